package dto_test

import (
	"net/url"
	"testing"

	"tasklist/internal/domains/todo/model"
	"tasklist/internal/domains/todo/model/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequestFromForm(t *testing.T) {
	t.Parallel()

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		form := url.Values{}
		form.Set("title", "  buy milk  ")

		var req dto.CreateTodoRequest
		req.FromForm(form)

		assert.Equal(t, "buy milk", req.Title)
	})

	t.Run("whitespace-only title decodes to empty", func(t *testing.T) {
		t.Parallel()

		form := url.Values{}
		form.Set("title", "   ")

		var req dto.CreateTodoRequest
		req.FromForm(form)

		assert.Empty(t, req.Title)
	})
}

func TestCreateTodoRequestToModel(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	req := dto.CreateTodoRequest{Title: "buy milk"}
	todo := req.ToModel(userID)

	assert.Equal(t, "buy milk", todo.Title)
	assert.Equal(t, userID, todo.UserID)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())

	_, err := uuid.Parse(todo.ID)
	require.NoError(t, err)
}

func TestMutateTodoRequestFromForm(t *testing.T) {
	t.Parallel()

	todoID := uuid.NewString()

	form := url.Values{}
	form.Set("todoId", " "+todoID+" ")

	var req dto.MutateTodoRequest
	req.FromForm(form)

	assert.Equal(t, todoID, req.TodoID)
}

func TestNewTodoViews(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		todos := []model.Todo{
			{ID: uuid.NewString(), Title: "first"},
			{ID: uuid.NewString(), Title: "second", Completed: true},
		}

		views := dto.NewTodoViews(todos)

		require.Len(t, views, 2)
		assert.Equal(t, "first", views[0].Title)
		assert.Equal(t, "second", views[1].Title)
		assert.True(t, views[1].Completed)
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		t.Parallel()

		views := dto.NewTodoViews(nil)

		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
