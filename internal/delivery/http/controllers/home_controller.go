package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeResponse is the body of GET /.
type HomeResponse struct {
	Name  string            `json:"name"`
	Links map[string]string `json:"links"`
}

type HomeController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHomeController(logger *slog.Logger, db Pinger) *HomeController {
	return &HomeController{Logger: logger, DB: db}
}

// Index godoc
// @Summary Landing page
// @Description Entry point listing the top-level resources.
// @Tags home
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=controllers.HomeResponse}
// @Router / [get]
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HomeResponse{
		Name: "Fyyur",
		Links: map[string]string{
			"venues":  "/venues",
			"artists": "/artists",
			"shows":   "/shows",
			"docs":    "/swagger/index.html",
		},
	})
}

// Healthz godoc
// @Summary Health check
// @Description Pings the database.
// @Tags home
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /healthz [get]
func (c *HomeController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := c.DB.Ping(ctx); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers every unmatched route.
func (c *HomeController) NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w, "resource not found")
}
