package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tasklist/infras/otel"
	"tasklist/internal/domains/todo/model/dto"
	"tasklist/internal/domains/todo/repository"
	"tasklist/shared/constant"
	"tasklist/shared/validator"
)

// Todo exposes the todo operations the transport layer dispatches to. The
// acting user is always explicit; there is no way to reach another user's
// rows through this interface.
type Todo interface {
	List(ctx context.Context, userID string) ([]dto.TodoView, error)
	Create(ctx context.Context, req dto.CreateTodoRequest, userID string) error
	Toggle(ctx context.Context, req dto.MutateTodoRequest, userID string) (dto.TodoView, error)
	Delete(ctx context.Context, req dto.MutateTodoRequest, userID string) error
}

type serviceImpl struct {
	repository repository.Todo
	otel       otel.Otel
}

func New(repo repository.Todo, otl otel.Otel) Todo {
	return &serviceImpl{
		repository: repo,
		otel:       otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, userID string) ([]dto.TodoView, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.List")
	defer scope.End()

	todos, err := s.repository.List(ctx, userID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return dto.NewTodoViews(todos), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest, userID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.repository.Create(ctx, req.ToModel(userID)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) Toggle(ctx context.Context, req dto.MutateTodoRequest, userID string) (dto.TodoView, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Toggle")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return dto.TodoView{}, err //nolint:wrapcheck
	}

	todo, err := s.repository.Toggle(ctx, req.TodoID, userID)
	if err != nil {
		scope.TraceIfError(err)

		return dto.TodoView{}, err //nolint:wrapcheck
	}

	return dto.NewTodoView(todo), nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.MutateTodoRequest, userID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.repository.Delete(ctx, req.TodoID, userID); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
