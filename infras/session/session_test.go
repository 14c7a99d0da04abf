package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklist/config"
	otelMocks "tasklist/infras/otel/mocks"
	"tasklist/infras/session"
	"tasklist/shared/cache"
	cacheMocks "tasklist/shared/cache/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGateFixture(t *testing.T) (session.Gate, *cacheMocks.MockRedisCache, *config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "tasklist"
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "tasklist_session"
	cfg.Session.ExpireMin = 60

	return session.New(cfg, cacheMock, otelMocks.NewOtel()), cacheMock, cfg
}

func issueSession(t *testing.T, gate session.Gate, cacheMock *cacheMocks.MockRedisCache) (*session.Session, *http.Cookie) {
	t.Helper()

	user := session.User{ID: uuid.NewString(), Name: "Ada", Email: "ada@example.com"}

	cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60*60).Return(nil)

	rec := httptest.NewRecorder()
	sess, err := gate.Issue(context.Background(), rec, user)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return sess, cookies[0]
}

func TestIssue(t *testing.T) {
	t.Parallel()

	gate, cacheMock, cfg := newGateFixture(t)

	sess, cookie := issueSession(t, gate, cacheMock)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "Ada", sess.User.Name)
	assert.False(t, sess.ExpiresAt.IsZero())

	assert.Equal(t, cfg.Session.CookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	// The cookie carries a signed token, never the session id itself.
	assert.NotContains(t, cookie.Value, sess.ID)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("round-trips an issued session", func(t *testing.T) {
		t.Parallel()

		gate, cacheMock, _ := newGateFixture(t)
		issued, cookie := issueSession(t, gate, cacheMock)

		cacheMock.EXPECT().Get(gomock.Any(), "session:"+issued.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*(value.(*session.Session)) = *issued

				return nil
			})

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.AddCookie(cookie)

		resolved, err := gate.Resolve(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, issued.ID, resolved.ID)
		assert.Equal(t, issued.User, resolved.User)
	})

	t.Run("no cookie resolves to nil without error", func(t *testing.T) {
		t.Parallel()

		gate, _, _ := newGateFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)

		resolved, err := gate.Resolve(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("garbage token resolves to nil without touching the store", func(t *testing.T) {
		t.Parallel()

		gate, _, cfg := newGateFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: "not-a-token"})

		resolved, err := gate.Resolve(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("revoked session resolves to nil", func(t *testing.T) {
		t.Parallel()

		gate, cacheMock, _ := newGateFixture(t)
		issued, cookie := issueSession(t, gate, cacheMock)

		cacheMock.EXPECT().Get(gomock.Any(), "session:"+issued.ID, gomock.Any()).Return(cache.Nil)

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.AddCookie(cookie)

		resolved, err := gate.Resolve(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("token signed with another secret resolves to nil", func(t *testing.T) {
		t.Parallel()

		otherGate, otherCache, cfg := newGateFixture(t)
		_, cookie := issueSession(t, otherGate, otherCache)

		// Same cookie name, different signing secret on the resolving gate.
		cfgCopy := *cfg
		cfgCopy.Session.Secret = "different-secret"
		ctrl := gomock.NewController(t)
		gate := session.New(&cfgCopy, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.AddCookie(cookie)

		resolved, err := gate.Resolve(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	t.Run("deletes the stored session and clears the cookie", func(t *testing.T) {
		t.Parallel()

		gate, cacheMock, cfg := newGateFixture(t)
		issued, cookie := issueSession(t, gate, cacheMock)

		cacheMock.EXPECT().Delete(gomock.Any(), "session:"+issued.ID).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/signout", nil)
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		err := gate.Revoke(context.Background(), rec, req)

		require.NoError(t, err)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cfg.Session.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("no session is a no-op that still clears the cookie", func(t *testing.T) {
		t.Parallel()

		gate, _, _ := newGateFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/signout", nil)

		rec := httptest.NewRecorder()
		err := gate.Revoke(context.Background(), rec, req)

		require.NoError(t, err)
		require.Len(t, rec.Result().Cookies(), 1)
	})
}
