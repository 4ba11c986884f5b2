package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vishyarjun/fyyur/internal/delivery/http/controllers"
	"github.com/vishyarjun/fyyur/internal/delivery/http/middleware"
)

// Controllers groups the handlers served by the router.
type Controllers struct {
	Home   *controllers.HomeController
	Venue  *controllers.VenueController
	Artist *controllers.ArtistController
	Show   *controllers.ShowController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.Home.Index)
	mux.HandleFunc("GET /healthz", c.Home.Healthz)

	// Venues
	mux.HandleFunc("GET /venues", c.Venue.ListVenues)
	mux.HandleFunc("POST /venues/search", c.Venue.SearchVenues)
	mux.HandleFunc("GET /venues/create", c.Venue.CreateVenueForm)
	mux.HandleFunc("POST /venues/create", c.Venue.CreateVenue)
	mux.HandleFunc("GET /venues/{id}", c.Venue.GetVenue)
	mux.HandleFunc("DELETE /venues/{id}", c.Venue.DeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", c.Venue.EditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", c.Venue.EditVenue)

	// Artists
	mux.HandleFunc("GET /artists", c.Artist.ListArtists)
	mux.HandleFunc("POST /artists/search", c.Artist.SearchArtists)
	mux.HandleFunc("GET /artists/create", c.Artist.CreateArtistForm)
	mux.HandleFunc("POST /artists/create", c.Artist.CreateArtist)
	mux.HandleFunc("GET /artists/{id}", c.Artist.GetArtist)
	mux.HandleFunc("DELETE /artists/{id}", c.Artist.DeleteArtist)
	mux.HandleFunc("GET /artists/{id}/edit", c.Artist.EditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", c.Artist.EditArtist)

	// Shows
	mux.HandleFunc("GET /shows", c.Show.ListShows)
	mux.HandleFunc("GET /shows/create", c.Show.CreateShowForm)
	mux.HandleFunc("POST /shows/create", c.Show.CreateShow)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", c.Home.NotFound)

	return mux
}

// NewHandler wraps the router in the middleware chain, outermost first:
// request id, logging, recover, CORS.
func NewHandler(logger *slog.Logger, mux http.Handler, allowedOrigins []string) http.Handler {
	h := middleware.CORS(allowedOrigins, mux)
	h = middleware.Recover(logger, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
