package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"contentpilot/errs"
	"contentpilot/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	jwtSecret []byte
}

func newAuthMiddleware(jwtSecret string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		jwtSecret: []byte(jwtSecret),
	}
}

// authenticate validates the bearer token and stores the caller's user ID in
// the request context. With no JWT_SECRET configured the raw bearer value is
// taken as the user ID, which keeps local development tokenless.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		userID := token
		if len(m.jwtSecret) > 0 {
			parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errs.ErrInvalidToken
				}
				return m.jwtSecret, nil
			})
			if err != nil {
				if strings.Contains(err.Error(), "expired") {
					m.responder.WriteError(w, errs.NewExpiredTokenError())
				} else {
					m.responder.WriteError(w, errs.NewInvalidTokenError())
				}
				return
			}
			subject, err := parsed.Claims.GetSubject()
			if err != nil || subject == "" {
				m.responder.WriteError(w, errs.NewInvalidTokenError())
				return
			}
			userID = subject
		}

		updatedReq := r.WithContext(ctxWithUserID(r.Context(), userID))
		next.ServeHTTP(w, updatedReq)
	})
}

type workspaceMiddleware struct {
	responder Responder
	service   *services.WorkspaceService
}

func newWorkspaceMiddleware(service *services.WorkspaceService) workspaceMiddleware {
	logger := log.With().Str("handlerName", "workspaceMiddleware").Logger()
	return workspaceMiddleware{
		responder: NewResponder(logger),
		service:   service,
	}
}

// resolve loads (or lazily creates) the caller's workspace and stores it in
// the request context, so every handler downstream is workspace-scoped.
func (m workspaceMiddleware) resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		workspace, err := m.service.Resolve(r.Context(), userID)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		updatedReq := r.WithContext(ctxWithWorkspace(r.Context(), workspace))
		next.ServeHTTP(w, updatedReq)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
