package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserName  contextKey = "user_name"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeySessionID contextKey = "session_id"
)

const (
	FormFieldIntent   = "intent"
	FormFieldTitle    = "title"
	FormFieldTodoID   = "todoId"
	FormFieldName     = "name"
	FormFieldEmail    = "email"
	FormFieldPassword = "password"
)

const (
	IntentCreate = "create"
	IntentToggle = "toggle"
	IntentDelete = "delete"
)

const (
	PathIndex   = "/"
	PathTodos   = "/todos"
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathSignout = "/signout"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	TitleMaxLength    = 100
	NameMaxLength     = 50
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSessionScopeName    = "session"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
