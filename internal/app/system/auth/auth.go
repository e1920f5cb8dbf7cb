package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey  = "is_authenticated"
	userIDKey  = "user_id"
	userName   = "user_name"
	userEmail  = "user_email"
	userRole   = "user_role"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// Fetcher loads the current state of an employee for session re-validation.
// It returns (user, true, nil) for an active employee, (nil, false, nil) when
// the employee is missing, inactive, or deleted, and an error only for store
// failures.
type Fetcher interface {
	FetchSessionEmployee(ctx context.Context, idHex string) (*SessionUser, bool, error)
}

// Manager owns the cookie store and the per-request session middleware.
type Manager struct {
	store   *sessions.CookieStore
	name    string
	fetcher Fetcher
	log     *zap.Logger
}

// NewManager builds a session manager. The session key must be provided;
// 32+ random characters are recommended.
func NewManager(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	return &Manager{store: store, name: sessionName, log: logger}, nil
}

// SetFetcher installs the employee fetcher used for continuous authorization.
func (m *Manager) SetFetcher(f Fetcher) { m.fetcher = f }

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// LoadSessionUser injects the user into context if they are logged in.
//
// When a fetcher is set, the employee record is re-read on every request:
// a missing, inactive, or deleted employee is signed out on the spot rather
// than at next login. Store errors fail open for reads (the cached session
// identity is used) so a transient DB blip doesn't log everyone out.
func (m *Manager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)

		isAuth, _ := sess.Values[isAuthKey].(bool)
		if !isAuth {
			next.ServeHTTP(w, r)
			return
		}

		u := &SessionUser{
			ID:    getString(sess, userIDKey),
			Name:  getString(sess, userName),
			Email: getString(sess, userEmail),
			Role:  getString(sess, userRole),
		}

		if m.fetcher != nil {
			fresh, ok, err := m.fetcher.FetchSessionEmployee(r.Context(), u.ID)
			switch {
			case err != nil:
				m.log.Warn("session re-validation failed; using cached identity", zap.Error(err))
			case !ok:
				// Force logout: account removed or deactivated.
				m.clear(sess, w, r)
				m.log.Info("session invalidated for removed or inactive employee", zap.String("employee_id", u.ID))
				next.ServeHTTP(w, r)
				return
			default:
				u = fresh
			}
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// SignIn stores the user in the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userName] = u.Name
	sess.Values[userEmail] = u.Email
	sess.Values[userRole] = u.Role
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	return m.clear(sess, w, r)
}

func (m *Manager) clear(sess *sessions.Session, w http.ResponseWriter, r *http.Request) error {
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// API callers get a plain 401 envelope.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		apierr.Unauthorized(w)
	})
}

// RequireRole ensures the current user holds one of the allowed roles.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				apierr.Unauthorized(w)
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				apierr.Forbidden(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user into the request context. Test helper only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
