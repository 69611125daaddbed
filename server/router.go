package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/config"
	"github.com/camden-git/starwarsapi/handlers"
	"github.com/camden-git/starwarsapi/repository"
)

// Repositories bundles the persistence dependencies of the router.
type Repositories struct {
	Users     repository.UserRepository
	People    repository.PersonRepository
	Planets   repository.PlanetRepository
	Favorites repository.FavoriteRepository
}

func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     repository.NewGormUserRepository(db),
		People:    repository.NewGormPersonRepository(db),
		Planets:   repository.NewGormPlanetRepository(db),
		Favorites: repository.NewGormFavoriteRepository(db),
	}
}

const (
	idUser   = "{" + handlers.ParamUserID + ":[0-9]+}"
	idPerson = "{" + handlers.ParamPeopleID + ":[0-9]+}"
	idPlanet = "{" + handlers.ParamPlanetID + ":[0-9]+}"
)

// NewRouter wires middleware and every API route. reg receives the HTTP
// metrics and is served on /metrics.
func NewRouter(cfg config.ServerConfig, repos Repositories, logger *zap.Logger, reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
	metrics := NewMetrics(reg)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(logger.Named("http")))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsHandler.Handler)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	userHandler := handlers.NewUserHandler(repos.Users, repos.Favorites, logger)
	personHandler := handlers.NewPersonHandler(repos.People, logger)
	planetHandler := handlers.NewPlanetHandler(repos.Planets, logger)
	favoriteHandler := handlers.NewFavoriteHandler(repos.Favorites, logger)

	r.Get("/", handlers.Sitemap(r, logger))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/user", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Route("/"+idUser+"/favorites", func(r chi.Router) {
			r.Get("/", userHandler.ListFavorites)
			r.Post("/planets/"+idPlanet, favoriteHandler.AddFavoritePlanet)
			r.Delete("/planets/"+idPlanet, favoriteHandler.RemoveFavoritePlanet)
			r.Post("/people/"+idPerson, favoriteHandler.AddFavoritePerson)
			r.Delete("/people/"+idPerson, favoriteHandler.RemoveFavoritePerson)
		})
	})

	r.Route("/people", func(r chi.Router) {
		r.Get("/", personHandler.ListPeople)
		r.Get("/"+idPerson, personHandler.GetPerson)
	})

	r.Route("/planets", func(r chi.Router) {
		r.Get("/", planetHandler.ListPlanets)
		r.Get("/"+idPlanet, planetHandler.GetPlanet)
	})

	return r
}
