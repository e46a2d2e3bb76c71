package basicauth

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// User is the credential pair keyed by email. Before persistence Password
// holds plaintext only transiently; at rest it always holds a bcrypt hash.
type User struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Validate will run validation rules for identity creation. Neither field
// may contain the credential separator, so every token issued at login
// decodes back to the same pair at verification.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(
			&u.Email,
			validation.Required,
			validation.Length(3, 100),
			is.Email,
			validation.By(validateNoSeparator),
		),
		validation.Field(
			&u.Password,
			validation.Required,
			validation.Length(1, 100),
			validation.By(validateNoSeparator),
		),
	)
}

func validateNoSeparator(value any) error {
	s, _ := value.(string)
	if strings.Contains(s, CredentialSeparator) {
		return errors.New("must not contain '" + CredentialSeparator + "'")
	}
	return nil
}
