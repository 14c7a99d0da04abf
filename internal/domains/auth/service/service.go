package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tasklist/infras/otel"
	"tasklist/infras/session"
	"tasklist/internal/domains/auth/model/dto"
	"tasklist/internal/domains/user/repository"
	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/shared/password"
	"tasklist/shared/validator"
)

const (
	msgEmailTaken         = "email already registered"
	msgInvalidCredentials = "invalid email or password"
)

// Auth turns credential forms into authenticated identities. Both operations
// return the session.User the caller hands to the session gate.
type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (session.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (session.User, error)
}

type serviceImpl struct {
	users repository.User
	otel  otel.Otel
}

func New(users repository.User, otl otel.Otel) Auth {
	return &serviceImpl{
		users: users,
		otel:  otl,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (session.User, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Signup")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return session.User{}, err //nolint:wrapcheck
	}

	taken, err := s.users.ExistByEmail(ctx, req.Email)
	if err != nil {
		scope.TraceError(err)

		return session.User{}, fmt.Errorf("failed to sign up: %w", err)
	}

	if taken {
		return session.User{}, failure.InvalidField(constant.FormFieldEmail, msgEmailTaken) //nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		scope.TraceError(err)

		return session.User{}, fmt.Errorf("failed to sign up: %w", err)
	}

	user := req.ToModel(hash)

	if err := s.users.Create(ctx, user); err != nil {
		scope.TraceError(err)

		return session.User{}, fmt.Errorf("failed to sign up: %w", err)
	}

	return session.User{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so the form cannot be used to probe for accounts.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (session.User, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return session.User{}, failure.InvalidField(constant.FormFieldEmail, msgInvalidCredentials) //nolint:wrapcheck
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		scope.TraceError(err)

		return session.User{}, fmt.Errorf("failed to log in: %w", err)
	}

	if user.ID == "" {
		return session.User{}, failure.InvalidField(constant.FormFieldEmail, msgInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		return session.User{}, failure.InvalidField(constant.FormFieldEmail, msgInvalidCredentials) //nolint:wrapcheck
	}

	return session.User{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
