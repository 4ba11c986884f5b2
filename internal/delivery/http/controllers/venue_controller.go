package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
	"github.com/vishyarjun/fyyur/internal/domain"
)

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Service: svc,
	}
}

// ListVenues godoc
// @Summary List venues grouped by locality
// @Description Venues bucketed by (city, state). Each venue carries its number of upcoming shows.
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.LocalityGroup}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.ListByLocality(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Description Case-insensitive substring match on the venue name. An empty term matches every venue.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body SearchRequest true "search_term"
// @Success 200 {object} helpers.APIResponse{data=domain.SearchResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /venues/search [post]
func (c *VenueController) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Search(r.Context(), req.Term())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// GetVenue godoc
// @Summary Get a venue
// @Description The venue with its shows split into past and upcoming.
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse{data=domain.VenueDetail}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /venues/{id} [get]
func (c *VenueController) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "venue not found")
		return
	}
	detail, err := c.Service.GetDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateVenueForm godoc
// @Summary Venue form choices
// @Description The genre and state choices for the new venue form.
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.FormChoices}
// @Router /venues/create [get]
func (c *VenueController) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewFormChoices())
}

// CreateVenue godoc
// @Summary Create a venue
// @Description Lists a new venue. Accepts a form post (multi-valued genres) or JSON.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param venue body VenueRequest true "Venue"
// @Success 201 {object} helpers.APIResponse{data=domain.Venue} "message: Venue <name> was successfully listed!"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/create [post]
func (c *VenueController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue := req.Venue()
	if err := c.Service.Create(r.Context(), venue); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusCreated, venue, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// EditVenueForm godoc
// @Summary Venue edit form
// @Description The stored venue, to prefill the edit form.
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Venue}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /venues/{id}/edit [get]
func (c *VenueController) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "venue not found")
		return
	}
	venue, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// EditVenue godoc
// @Summary Edit a venue
// @Description Applies the submitted fields to the venue. Omitted JSON fields are unchanged; a form post carries the whole venue.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body VenueRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse{data=domain.Venue}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{id}/edit [post]
func (c *VenueController) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "venue not found")
		return
	}
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.Update(r.Context(), id, req.Patch())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, venue, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Deletes the venue. A venue with shows is only deleted with cascade=true, which deletes its shows too.
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Param cascade query bool false "Also delete the venue's shows"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{id} [delete]
func (c *VenueController) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "venue not found")
		return
	}
	cascade, err := helpers.ParseBool(r.URL.Query().Get("cascade"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "cascade: "+err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id, cascade); err != nil {
		writeServiceError(w, r, c.Logger, err, "venue not found")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, map[string]int64{"id": id}, "Venue was successfully deleted.")
}
