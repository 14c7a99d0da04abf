package middleware

import (
	"context"
	"net/http"

	"tasklist/infras/otel"
	"tasklist/infras/session"
	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/shared/logger"
	"tasklist/transport/http/render"
)

// SessionMiddleware gates routes on session state. Authenticated routes
// bounce anonymous visitors to the login page; the auth pages bounce
// signed-in users back to their todos.
type SessionMiddleware interface {
	Authenticated(next http.Handler) http.Handler
	Anonymous(next http.Handler) http.Handler
}

type sessionMiddleware struct {
	gate session.Gate
	otel otel.Otel
}

func NewSessionMiddleware(gate session.Gate, otl otel.Otel) SessionMiddleware {
	return &sessionMiddleware{
		gate: gate,
		otel: otl,
	}
}

func (m *sessionMiddleware) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Authenticated")
		defer scope.End()

		sess, err := m.gate.Resolve(ctx, r)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)
			render.WithError(w, failure.InternalError(err))

			return
		}

		if sess == nil {
			http.Redirect(w, r, constant.PathLogin, http.StatusFound)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, sess.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, sess.User.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, sess.User.Name)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, sess.User.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *sessionMiddleware) Anonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Anonymous")
		defer scope.End()

		sess, err := m.gate.Resolve(ctx, r)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)
			render.WithError(w, failure.InternalError(err))

			return
		}

		if sess != nil {
			http.Redirect(w, r, constant.PathTodos, http.StatusFound)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
