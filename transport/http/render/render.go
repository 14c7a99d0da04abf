package render

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"tasklist/shared/constant"
	"tasklist/shared/failure"
	"tasklist/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Page names accepted by Render. Each page is parsed together with the
// shared layout at startup; an unknown page is a programming error.
const (
	PageTodos  = "todos"
	PageLogin  = "login"
	PageSignup = "signup"
	PageError  = "error"
)

var pages = map[string]*template.Template{
	PageTodos:  parse("todos.gohtml"),
	PageLogin:  parse("login.gohtml"),
	PageSignup: parse("signup.gohtml"),
	PageError:  parse("error.gohtml"),
}

func parse(file string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+file))
}

// ErrorData is the error page's view model.
type ErrorData struct {
	Code    int
	Message string
}

// HTML renders the named page into the response with the given status. The
// page is executed into a buffer first so a template failure never leaks a
// half-written body.
func HTML(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// WithError renders the error page with the status derived from the error.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := http.StatusText(code)
	if code < http.StatusInternalServerError {
		message = err.Error()
	}

	HTML(w, code, PageError, ErrorData{Code: code, Message: message})
}

// WithRequestLimitExceeded renders the error page for throttled requests.
func WithRequestLimitExceeded(w http.ResponseWriter) {
	HTML(w, http.StatusTooManyRequests, PageError, ErrorData{
		Code:    http.StatusTooManyRequests,
		Message: constant.ResponseErrorRequestLimitExceeded,
	})
}

// Redirect issues a See Other redirect, the post-form-submission kind: the
// browser re-requests the target with GET, so refreshing never resubmits.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
