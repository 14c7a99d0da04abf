package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tasklist/config"
	"tasklist/infras/otel"
	"tasklist/shared"
	"tasklist/shared/cache"
	"tasklist/shared/constant"
	"tasklist/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeySession = "session"
)

// User is the authenticated identity a session carries.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is an opaque proof of authentication resolved from request cookies.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Gate resolves, issues and revokes sessions. Handlers never touch cookie
// mechanics directly; the gate is injected so tests can substitute it.
type Gate interface {
	Resolve(ctx context.Context, r *http.Request) (*Session, error)
	Issue(ctx context.Context, w http.ResponseWriter, user User) (*Session, error)
	Revoke(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type gateImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otl otel.Otel) Gate {
	return &gateImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otl,
	}
}

// Resolve returns the live session for the request, or nil when the request
// carries no cookie, an invalid or expired token, or a revoked session. Only
// infrastructure failures surface as errors.
func (g *gateImpl) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Resolve")
	defer scope.End()

	cookie, err := r.Cookie(g.cfg.Session.CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, nil
	}

	sessionID, err := g.parseToken(cookie.Value)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session cookie")

		return nil, nil
	}

	var sess Session

	err = g.cache.Get(ctx, shared.BuildCacheKey(cacheKeySession, sessionID), &sess)
	if errors.Is(err, cache.Nil) {
		// Signature checked out but the server-side entry is gone: the
		// session was revoked or expired out of Redis.
		return nil, nil
	}

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &sess, nil
}

// Issue creates a session for the user, stores it server-side and sets the
// signed cookie on the response.
func (g *gateImpl) Issue(ctx context.Context, w http.ResponseWriter, user User) (*Session, error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Issue")
	defer scope.End()

	now := timezone.Now()
	ttl := time.Duration(g.cfg.Session.ExpireMin) * time.Minute

	sess := &Session{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: now.Add(ttl),
	}

	if err := g.cache.Save(ctx, shared.BuildCacheKey(cacheKeySession, sess.ID), sess, g.cfg.Session.ExpireMin*60); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    g.cfg.App.Name,
			Subject:   user.ID,
			ID:        sess.ID,
		},
	})

	signed, err := token.SignedString([]byte(g.cfg.Session.Secret))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     g.cfg.Session.CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   g.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Revoke deletes the server-side session entry and clears the cookie. A
// request without a valid session is a no-op.
func (g *gateImpl) Revoke(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Revoke")
	defer scope.End()

	defer g.clearCookie(w)

	cookie, err := r.Cookie(g.cfg.Session.CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return nil
	}

	sessionID, err := g.parseToken(cookie.Value)
	if err != nil {
		return nil
	}

	if err := g.cache.Delete(ctx, shared.BuildCacheKey(cacheKeySession, sessionID)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (g *gateImpl) parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(g.cfg.Session.Secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid || parsed.SessionID == "" {
		return "", errors.New("invalid session token claims")
	}

	return parsed.SessionID, nil
}

func (g *gateImpl) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     g.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
