package dto

import (
	"net/url"
	"strings"
	"time"

	"tasklist/internal/domains/todo/model"
	"tasklist/shared/constant"
	"tasklist/shared/timezone"

	"github.com/google/uuid"
)

// CreateTodoRequest carries the create branch of the todo mutation form.
type CreateTodoRequest struct {
	Title string `form:"title" validate:"required,max=100"`
}

func (d *CreateTodoRequest) FromForm(form url.Values) {
	d.Title = strings.TrimSpace(form.Get(constant.FormFieldTitle))
}

func (d *CreateTodoRequest) ToModel(userID string) model.Todo {
	return model.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     d.Title,
		Completed: false,
		CreatedAt: timezone.Now(),
	}
}

// MutateTodoRequest carries the toggle and delete branches, which only need
// the target identifier.
type MutateTodoRequest struct {
	TodoID string `form:"todoId" validate:"required,uuid4"`
}

func (d *MutateTodoRequest) FromForm(form url.Values) {
	d.TodoID = strings.TrimSpace(form.Get(constant.FormFieldTodoID))
}

// TodoView is the template-facing shape of a todo.
type TodoView struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

func NewTodoView(todo model.Todo) TodoView {
	return TodoView{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
	}
}

func NewTodoViews(todos []model.Todo) []TodoView {
	views := make([]TodoView, 0, len(todos))

	for _, todo := range todos {
		views = append(views, NewTodoView(todo))
	}

	return views
}
