package todo

import (
	"net/http"

	"tasklist/infras/otel"
	"tasklist/internal/domains/todo/model/dto"
	"tasklist/internal/domains/todo/service"
	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/transport/http/middleware"
	"tasklist/transport/http/render"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PageData is the todos page view model. Title and Errors carry a rejected
// create submission back into the form.
type PageData struct {
	UserName string
	Title    string
	Errors   map[string]string
	Todos    []dto.TodoView
}

type Handler struct {
	service service.Todo
	session middleware.SessionMiddleware
	otel    otel.Otel
}

func New(service service.Todo, session middleware.SessionMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Authenticated)
		routerGroup.Get(constant.PathTodos, handler.TodosPage)
		routerGroup.Post(constant.PathTodos, handler.Dispatch)
	})
}

// TodosPage renders the signed-in user's todo list.
func (handler *Handler) TodosPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TodosPage")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	todos, err := handler.service.List(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list todos")

		render.WithError(w, err)

		return
	}

	render.HTML(w, http.StatusOK, render.PageTodos, PageData{
		UserName: userName,
		Todos:    todos,
	})
}

// Dispatch routes a todo form submission on its intent field. Every
// successful mutation answers with a redirect back to the page so a refresh
// never replays the form.
func (handler *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dispatch")
	defer scope.End()

	r = r.WithContext(ctx)

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		render.WithError(w, failure.BadRequest(err))

		return
	}

	intent := r.PostForm.Get(constant.FormFieldIntent)
	scope.SetAttribute("todo.intent", intent)

	switch intent {
	case constant.IntentCreate:
		handler.create(w, r)
	case constant.IntentToggle:
		handler.toggle(w, r)
	case constant.IntentDelete:
		handler.delete(w, r)
	default:
		// Unrecognized intents are a no-op; the page re-renders as-is.
		log.Warn().Str("intent", intent).Msg("unrecognized todo intent")

		render.Redirect(w, r, constant.PathTodos)
	}
}

func (handler *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.CreateTodoRequest{}
	req.FromForm(r.PostForm)

	err := handler.service.Create(ctx, req, userID)
	if err == nil {
		render.Redirect(w, r, constant.PathTodos)

		return
	}

	fields := failure.FieldErrors(err)
	if fields == nil {
		log.Error().Err(err).Msg("failed to create todo")

		render.WithError(w, err)

		return
	}

	// Re-render the page with the rejected input still in the form.
	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	todos, listErr := handler.service.List(ctx, userID)
	if listErr != nil {
		log.Error().Err(listErr).Msg("failed to list todos")

		render.WithError(w, listErr)

		return
	}

	render.HTML(w, http.StatusBadRequest, render.PageTodos, PageData{
		UserName: userName,
		Title:    req.Title,
		Errors:   fields,
		Todos:    todos,
	})
}

func (handler *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.MutateTodoRequest{}
	req.FromForm(r.PostForm)

	_, err := handler.service.Toggle(ctx, req, userID)
	if err != nil && failure.FieldErrors(err) == nil && !failure.IsNotFound(err) {
		log.Error().Err(err).Msg("failed to toggle todo")

		render.WithError(w, err)

		return
	}

	// Malformed identifiers and rows that are gone (or never were the
	// user's) all land here: redirect and let the page tell the truth.
	render.Redirect(w, r, constant.PathTodos)
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.MutateTodoRequest{}
	req.FromForm(r.PostForm)

	err := handler.service.Delete(ctx, req, userID)
	if err != nil && failure.FieldErrors(err) == nil {
		log.Error().Err(err).Msg("failed to delete todo")

		render.WithError(w, err)

		return
	}

	render.Redirect(w, r, constant.PathTodos)
}
