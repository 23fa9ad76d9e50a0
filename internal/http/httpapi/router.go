package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"imagestudio/internal/http/handlers"
	"imagestudio/internal/middleware"
	"imagestudio/web"
)

// NewRouter wires the JSON API and the embedded page. The country lookup is
// optional; without it locale detection relies on headers alone.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(*app.Logger))
	r.Use(middleware.CORS(app.Config.CORSAllowedOrigins))
	r.Use(middleware.I18N(app.Config.DefaultLocale, lookup))

	limit := middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/session", app.SessionState)
		r.Route("/images", func(r chi.Router) {
			r.With(limit).Post("/source", app.UploadSource)
			r.With(limit).Post("/edit", app.EditImage)
			r.Get("/result", app.Result)
			r.Get("/result/download", app.DownloadResult)
		})
	})

	r.Handle("/*", stdhttp.FileServer(stdhttp.FS(web.Assets)))

	return r
}
