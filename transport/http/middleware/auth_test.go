package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "tasklist/infras/otel/mocks"
	"tasklist/infras/session"
	sessionMocks "tasklist/infras/session/mocks"
	"tasklist/shared/constant"
	"tasklist/transport/http/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionMiddleware(t *testing.T) (middleware.SessionMiddleware, *sessionMocks.MockGate) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gate := sessionMocks.NewMockGate(ctrl)

	return middleware.NewSessionMiddleware(gate, otelMocks.NewOtel()), gate
}

func TestAuthenticated(t *testing.T) {
	t.Parallel()

	t.Run("passes the session identity through the context", func(t *testing.T) {
		t.Parallel()

		mw, gate := newSessionMiddleware(t)

		sess := &session.Session{
			ID:   uuid.NewString(),
			User: session.User{ID: uuid.NewString(), Name: "Ada", Email: "ada@example.com"},
		}
		gate.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(sess, nil)

		var gotUserID, gotUserName string

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
			gotUserName, _ = r.Context().Value(constant.ContextKeyUserName).(string)
		})

		req := httptest.NewRequest(http.MethodGet, constant.PathTodos, nil)
		rec := httptest.NewRecorder()
		mw.Authenticated(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, sess.User.ID, gotUserID)
		assert.Equal(t, "Ada", gotUserName)
	})

	t.Run("redirects anonymous visitors to login", func(t *testing.T) {
		t.Parallel()

		mw, gate := newSessionMiddleware(t)
		gate.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not run for anonymous visitors")
		})

		req := httptest.NewRequest(http.MethodGet, constant.PathTodos, nil)
		rec := httptest.NewRecorder()
		mw.Authenticated(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"))
	})

	t.Run("renders the error page on gate failure", func(t *testing.T) {
		t.Parallel()

		mw, gate := newSessionMiddleware(t)
		gate.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not run when the gate fails")
		})

		req := httptest.NewRequest(http.MethodGet, constant.PathTodos, nil)
		rec := httptest.NewRecorder()
		mw.Authenticated(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAnonymous(t *testing.T) {
	t.Parallel()

	t.Run("lets anonymous visitors through", func(t *testing.T) {
		t.Parallel()

		mw, gate := newSessionMiddleware(t)
		gate.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, nil)

		called := false

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		req := httptest.NewRequest(http.MethodGet, constant.PathLogin, nil)
		rec := httptest.NewRecorder()
		mw.Anonymous(next).ServeHTTP(rec, req)

		assert.True(t, called)
	})

	t.Run("redirects signed-in visitors to their todos", func(t *testing.T) {
		t.Parallel()

		mw, gate := newSessionMiddleware(t)
		gate.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&session.Session{ID: uuid.NewString()}, nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not run for signed-in visitors")
		})

		req := httptest.NewRequest(http.MethodGet, constant.PathLogin, nil)
		rec := httptest.NewRecorder()
		mw.Anonymous(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathTodos, rec.Header().Get("Location"))
	})
}
