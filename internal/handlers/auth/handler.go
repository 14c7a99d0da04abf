package auth

import (
	"net/http"

	"tasklist/infras/otel"
	"tasklist/infras/session"
	"tasklist/internal/domains/auth/model/dto"
	"tasklist/internal/domains/auth/service"
	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/transport/http/middleware"
	"tasklist/transport/http/render"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PageData is the shared view model of the login and signup pages.
type PageData struct {
	Name   string
	Email  string
	Errors map[string]string
}

type Handler struct {
	service service.Auth
	gate    session.Gate
	session middleware.SessionMiddleware
	otel    otel.Otel
}

func New(service service.Auth, gate session.Gate, sessionMW middleware.SessionMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		gate:    gate,
		session: sessionMW,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathIndex, handler.Index)
	router.Post(constant.PathSignout, handler.Signout)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Anonymous)
		routerGroup.Get(constant.PathLogin, handler.LoginPage)
		routerGroup.Post(constant.PathLogin, handler.Login)
		routerGroup.Get(constant.PathSignup, handler.SignupPage)
		routerGroup.Post(constant.PathSignup, handler.Signup)
	})
}

// Index sends visitors to their todos, or to the login page when they have
// no session.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Index")
	defer scope.End()

	sess, err := handler.gate.Resolve(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve session")

		render.WithError(w, failure.InternalError(err))

		return
	}

	if sess == nil {
		http.Redirect(w, r, constant.PathLogin, http.StatusFound)

		return
	}

	http.Redirect(w, r, constant.PathTodos, http.StatusFound)
}

func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginPage")
	defer scope.End()

	render.HTML(w, http.StatusOK, render.PageLogin, PageData{})
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		render.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.LoginRequest{}
	req.FromForm(r.PostForm)

	user, err := handler.service.Login(ctx, req)
	if err != nil {
		if fields := failure.FieldErrors(err); fields != nil {
			render.HTML(w, http.StatusBadRequest, render.PageLogin, PageData{
				Email:  req.Email,
				Errors: fields,
			})

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		render.WithError(w, err)

		return
	}

	if _, err := handler.gate.Issue(ctx, w, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue session")

		render.WithError(w, failure.InternalError(err))

		return
	}

	render.Redirect(w, r, constant.PathTodos)
}

func (handler *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignupPage")
	defer scope.End()

	render.HTML(w, http.StatusOK, render.PageSignup, PageData{})
}

func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		render.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.SignupRequest{}
	req.FromForm(r.PostForm)

	user, err := handler.service.Signup(ctx, req)
	if err != nil {
		if fields := failure.FieldErrors(err); fields != nil {
			render.HTML(w, http.StatusBadRequest, render.PageSignup, PageData{
				Name:   req.Name,
				Email:  req.Email,
				Errors: fields,
			})

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		render.WithError(w, err)

		return
	}

	if _, err := handler.gate.Issue(ctx, w, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue session")

		render.WithError(w, failure.InternalError(err))

		return
	}

	scope.AddEvent("User signed up: " + user.ID)

	render.Redirect(w, r, constant.PathTodos)
}

// Signout revokes the session and clears the cookie. Works the same with or
// without a live session, so a stale tab never strands the user.
func (handler *Handler) Signout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signout")
	defer scope.End()

	if err := handler.gate.Revoke(ctx, w, r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revoke session")

		render.WithError(w, failure.InternalError(err))

		return
	}

	render.Redirect(w, r, constant.PathLogin)
}
