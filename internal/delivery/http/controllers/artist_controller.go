package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
	"github.com/vishyarjun/fyyur/internal/domain"
)

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService) *ArtistController {
	return &ArtistController{
		Logger:  logger,
		Service: svc,
	}
}

// ListArtists godoc
// @Summary List artists
// @Description Every artist as {id, name, num_upcoming_shows}, ordered by id. With group_by=locality the artists are bucketed by (city, state) like venues.
// @Tags artists
// @Produce json
// @Param group_by query string false "locality"
// @Success 200 {object} helpers.APIResponse{data=[]domain.EntitySummary}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("group_by") {
	case "":
		artists, err := c.Service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, c.Logger, err, "")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, artists)
	case "locality":
		groups, err := c.Service.ListByLocality(r.Context())
		if err != nil {
			writeServiceError(w, r, c.Logger, err, "")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, groups)
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "group_by must be empty or locality")
	}
}

// SearchArtists godoc
// @Summary Search artists by name
// @Description Case-insensitive substring match on the artist name. An empty term matches every artist.
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body SearchRequest true "search_term"
// @Success 200 {object} helpers.APIResponse{data=domain.SearchResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /artists/search [post]
func (c *ArtistController) SearchArtists(w http.ResponseWriter, r *http.Request) {
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

// GetArtist godoc
// @Summary Get an artist
// @Description The artist with its shows split into past and upcoming; each show names its venue.
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse{data=domain.ArtistDetail}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /artists/{id} [get]
func (c *ArtistController) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "artist not found")
		return
	}
	detail, err := c.Service.GetDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateArtistForm godoc
// @Summary Artist form choices
// @Tags artists
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.FormChoices}
// @Router /artists/create [get]
func (c *ArtistController) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewFormChoices())
}

// CreateArtist godoc
// @Summary Create an artist
// @Description Lists a new artist. Accepts a form post (multi-valued genres) or JSON.
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param artist body ArtistRequest true "Artist"
// @Success 201 {object} helpers.APIResponse{data=domain.Artist} "message: Artist <name> was successfully listed!"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/create [post]
func (c *ArtistController) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req ArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	artist := req.Artist()
	if err := c.Service.Create(r.Context(), artist); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusCreated, artist, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

// EditArtistForm godoc
// @Summary Artist edit form
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Artist}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /artists/{id}/edit [get]
func (c *ArtistController) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "artist not found")
		return
	}
	artist, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}

// EditArtist godoc
// @Summary Edit an artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Artist ID"
// @Param artist body ArtistRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse{data=domain.Artist}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{id}/edit [post]
func (c *ArtistController) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "artist not found")
		return
	}
	var req ArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	artist, err := c.Service.Update(r.Context(), id, req.Patch())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, artist, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Deletes the artist. An artist with shows is only deleted with cascade=true, which deletes their shows too.
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Param cascade query bool false "Also delete the artist's shows"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /artists/{id} [delete]
func (c *ArtistController) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		writeNotFound(w, "artist not found")
		return
	}
	cascade, err := helpers.ParseBool(r.URL.Query().Get("cascade"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "cascade: "+err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id, cascade); err != nil {
		writeServiceError(w, r, c.Logger, err, "artist not found")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, map[string]int64{"id": id}, "Artist was successfully deleted.")
}
