package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imagestudio/internal/domain"
	"imagestudio/internal/infra"
	"imagestudio/internal/middleware"
	"imagestudio/internal/providers/image"
	"imagestudio/internal/studio"
)

const sessionCookieName = "studio_session"

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Config   *infra.Config
	Logger   *infra.Logger
	Editor   image.Editor
	Sessions *studio.Store
}

func NewApp(cfg *infra.Config, logger *infra.Logger, editor image.Editor, sessions *studio.Store) *App {
	return &App{Config: cfg, Logger: logger, Editor: editor, Sessions: sessions}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, r *http.Request, status int, code string) {
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": localize(locale, code),
		},
	})
}

// failure translates a domain error into the HTTP surface. Anything outside
// the taxonomy collapses into the generic generation failure so provider
// internals never leak to the page.
func (a *App) failure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNoSession):
		a.error(w, r, http.StatusBadRequest, codeValidation)
	case errors.Is(err, domain.ErrFileRead):
		a.error(w, r, http.StatusBadRequest, codeFileRead)
	case errors.Is(err, domain.ErrEditInFlight):
		a.error(w, r, http.StatusConflict, codeEditInFlight)
	case errors.Is(err, domain.ErrNoResult):
		a.error(w, r, http.StatusNotFound, codeNoResult)
	case errors.Is(err, domain.ErrNoImageReturned):
		a.error(w, r, http.StatusBadGateway, codeNoImageReturned)
	default:
		a.error(w, r, http.StatusBadGateway, codeGenerationFailed)
	}
}

// session returns the caller's live session, if any.
func (a *App) session(r *http.Request) (*studio.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	return a.Sessions.Get(cookie.Value)
}

// ensureSession returns the caller's session, creating one and setting the
// cookie when none exists yet.
func (a *App) ensureSession(w http.ResponseWriter, r *http.Request) *studio.Session {
	if session, ok := a.session(r); ok {
		return session
	}
	session := a.Sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.AppEnv == "production",
	})
	return session
}
