package service_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "tasklist/infras/otel/mocks"
	"tasklist/internal/domains/todo/mocks"
	"tasklist/internal/domains/todo/model"
	"tasklist/internal/domains/todo/model/dto"
	"tasklist/internal/domains/todo/service"
	"tasklist/shared/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestList(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	t.Run("returns views for the user's todos", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		todos := []model.Todo{
			{ID: uuid.NewString(), UserID: userID, Title: "buy milk"},
			{ID: uuid.NewString(), UserID: userID, Title: "walk the dog", Completed: true},
		}
		repo.EXPECT().List(gomock.Any(), userID).Return(todos, nil)

		views, err := svc.List(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "buy milk", views[0].Title)
		assert.False(t, views[0].Completed)
		assert.True(t, views[1].Completed)
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().List(gomock.Any(), userID).Return([]model.Todo{}, nil)

		views, err := svc.List(context.Background(), userID)

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("connection refused"))

		_, err := svc.List(context.Background(), userID)

		require.Error(t, err)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	t.Run("persists a valid todo for the acting user", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, todo model.Todo) error {
				assert.Equal(t, "buy milk", todo.Title)
				assert.Equal(t, userID, todo.UserID)
				assert.False(t, todo.Completed)
				assert.NotEmpty(t, todo.ID)
				assert.False(t, todo.CreatedAt.IsZero())

				return nil
			})

		err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: "buy milk"}, userID)

		require.NoError(t, err)
	})

	t.Run("rejects an empty title with a field error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: ""}, userID)

		require.Error(t, err)
		fields := failure.FieldErrors(err)
		require.Contains(t, fields, "title")
	})

	t.Run("rejects a title over the length limit", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}

		err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: string(long)}, userID)

		require.Error(t, err)
		fields := failure.FieldErrors(err)
		require.Contains(t, fields, "title")
	})

	t.Run("accepts a title exactly at the length limit", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		exact := make([]byte, 100)
		for i := range exact {
			exact[i] = 'a'
		}

		err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: string(exact)}, userID)

		require.NoError(t, err)
	})
}

func TestToggle(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	t.Run("flips the todo and returns the updated view", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		todoID := uuid.NewString()
		repo.EXPECT().Toggle(gomock.Any(), todoID, userID).
			Return(model.Todo{ID: todoID, UserID: userID, Title: "buy milk", Completed: true}, nil)

		view, err := svc.Toggle(context.Background(), dto.MutateTodoRequest{TodoID: todoID}, userID)

		require.NoError(t, err)
		assert.True(t, view.Completed)
	})

	t.Run("rejects a malformed identifier without touching the store", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		_, err := svc.Toggle(context.Background(), dto.MutateTodoRequest{TodoID: "not-a-uuid"}, userID)

		require.Error(t, err)
		require.Contains(t, failure.FieldErrors(err), "todoId")
	})

	t.Run("surfaces not found for another user's todo", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		todoID := uuid.NewString()
		repo.EXPECT().Toggle(gomock.Any(), todoID, userID).
			Return(model.Todo{}, failure.NotFound("todo not found"))

		_, err := svc.Toggle(context.Background(), dto.MutateTodoRequest{TodoID: todoID}, userID)

		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	t.Run("deletes the user's todo", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		todoID := uuid.NewString()
		repo.EXPECT().Delete(gomock.Any(), todoID, userID).Return(nil)

		err := svc.Delete(context.Background(), dto.MutateTodoRequest{TodoID: todoID}, userID)

		require.NoError(t, err)
	})

	t.Run("rejects a malformed identifier without touching the store", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTodoRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		err := svc.Delete(context.Background(), dto.MutateTodoRequest{TodoID: ""}, userID)

		require.Error(t, err)
		require.Contains(t, failure.FieldErrors(err), "todoId")
	})
}
