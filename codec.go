package basicauth

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// CredentialSeparator joins email and password before encoding. Signup
// rejects it in both fields, so decode stays unambiguous.
const CredentialSeparator = ":"

// EncodeCredentials encodes a credential pair into a transport safe token:
// standard base64 of "email:password".
func EncodeCredentials(email, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + CredentialSeparator + password))
}

// DecodeCredentials reverses EncodeCredentials. It rejects invalid base64,
// non UTF-8 payloads, and any joined result without exactly one separator.
// All failures are ErrMalformedAuthHeader.
func DecodeCredentials(token string) (email, password string, err error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", ErrMalformedAuthHeader
	}

	if !utf8.Valid(raw) {
		return "", "", ErrMalformedAuthHeader
	}

	email, password, found := strings.Cut(string(raw), CredentialSeparator)
	if !found || strings.Contains(password, CredentialSeparator) {
		return "", "", ErrMalformedAuthHeader
	}

	return email, password, nil
}
