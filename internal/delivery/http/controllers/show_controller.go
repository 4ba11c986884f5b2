package controllers

import (
	"log/slog"
	"net/http"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
	"github.com/vishyarjun/fyyur/internal/domain"
)

type ShowController struct {
	Logger  *slog.Logger
	Service domain.ShowService
}

func NewShowController(logger *slog.Logger, svc domain.ShowService) *ShowController {
	return &ShowController{
		Logger:  logger,
		Service: svc,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Every show with its venue and artist, ordered by start time.
// @Tags shows
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.ShowListing}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows [get]
func (c *ShowController) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}

// CreateShowForm godoc
// @Summary Show form
// @Description The fields expected by POST /shows/create.
// @Tags shows
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=controllers.ShowRequest}
// @Router /shows/create [get]
func (c *ShowController) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, ShowRequest{})
}

// CreateShow godoc
// @Summary Create a show
// @Description Books an artist at a venue. start_time is RFC 3339 or "2006-01-02 15:04:05" (UTC).
// @Tags shows
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param show body ShowRequest true "Show"
// @Success 201 {object} helpers.APIResponse{data=domain.Show} "message: Show at <start_time> was successfully listed!"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_entity (unknown venue or artist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows/create [post]
func (c *ShowController) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req ShowRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	show := req.Show()
	if err := c.Service.Create(r.Context(), show); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusCreated, show, "Show "+show.Label()+" was successfully listed!")
}
