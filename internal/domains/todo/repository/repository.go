package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tasklist/infras/otel"
	"tasklist/infras/postgres"
	"tasklist/internal/domains/todo/model"
	"tasklist/shared"
	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/shared/logger"
	gRepo "tasklist/shared/repository"
)

// Todo is the ownership-checked access layer. Every operation takes the
// acting user's identifier explicitly; ownership is folded into the query
// predicate, never checked after the fact.
type Todo interface {
	List(ctx context.Context, userID string) ([]model.Todo, error)
	Create(ctx context.Context, todo model.Todo) error
	Toggle(ctx context.Context, todoID, userID string) (model.Todo, error)
	Delete(ctx context.Context, todoID, userID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// List returns every todo owned by the user, in store order. A user with no
// todos gets an empty slice, not an error.
func (repo *repositoryImpl) List(ctx context.Context, userID string) ([]model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	todos, err := repo.GetAll(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	if todos == nil {
		todos = []model.Todo{}
	}

	return todos, nil
}

// Create persists a new todo row. Title validity is the caller's business.
func (repo *repositoryImpl) Create(ctx context.Context, todo model.Todo) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if err := repo.Insert(ctx, todo); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

// Toggle flips completed in a single atomic statement filtered by id AND
// owner. A missing row and a row owned by someone else are indistinguishable
// to the caller: both come back as NotFound.
func (repo *repositoryImpl) Toggle(ctx context.Context, todoID, userID string) (model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Toggle", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = NOT %s WHERE %s = :id AND %s = :user_id RETURNING %s, %s, %s, %s, %s",
		model.TableName,
		model.FieldCompleted, model.FieldCompleted,
		model.FieldID, model.FieldUserID,
		model.FieldID, model.FieldUserID, model.FieldTitle, model.FieldCompleted, model.FieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var todo model.Todo

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todo, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &todo, map[string]any{
		"id":      todoID,
		"user_id": userID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return todo, failure.NotFound("todo not found") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todo, fmt.Errorf("failed to toggle todo: %w", err)
	}

	return todo, nil
}

// Delete removes the row matching id AND owner. Zero matched rows is not an
// error; delete is idempotent and leaks nothing about other users' rows.
func (repo *repositoryImpl) Delete(ctx context.Context, todoID, userID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := shared.FilterByOwner(todoID, userID, model.FieldID, model.FieldUserID, model.TableName)

	if err := repo.Repository.Delete(ctx, filter); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
