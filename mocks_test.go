package basicauth_test

import (
	"context"

	basicauth "github.com/goliatone/go-basicauth"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements basicauth.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Add(ctx context.Context, user basicauth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Get(ctx context.Context, email string) (basicauth.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(basicauth.User), args.Error(1)
}

func (m *MockUserStore) Exists(ctx context.Context, email string) bool {
	args := m.Called(ctx, email)
	return args.Bool(0)
}

// MockStrategy implements basicauth.Strategy
type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) Authenticate(ctx context.Context, candidate basicauth.User) (*basicauth.AuthResponse, error) {
	args := m.Called(ctx, candidate)
	if res, ok := args.Get(0).(*basicauth.AuthResponse); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStrategy) Verify(ctx context.Context, authorization string) (*basicauth.User, error) {
	args := m.Called(ctx, authorization)
	if user, ok := args.Get(0).(*basicauth.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}
