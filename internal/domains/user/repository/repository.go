package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tasklist/infras/otel"
	"tasklist/infras/postgres"
	"tasklist/internal/domains/user/model"
	"tasklist/shared"
	"tasklist/shared/constant"
	gRepo "tasklist/shared/repository"
)

type User interface {
	Create(ctx context.Context, user model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, user model.User) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if err := repo.Insert(ctx, user); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail returns the user with the given email, or the zero value when no
// such user exists. The caller tells the cases apart via ID != "".
func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByEmail", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	user, err := repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	user, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (repo *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ExistByEmail", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	exist, err := repo.Exist(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exist, nil
}
