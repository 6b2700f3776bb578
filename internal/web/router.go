package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/opencanteen/canteen/internal/handlers"
	"github.com/opencanteen/canteen/internal/store"
)

func Router(st *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handlers.Home)
	r.Get("/healthz", handlers.Health)

	r.Get("/ingredients", handlers.ListIngredients(st))
	r.Post("/ingredients", handlers.CreateIngredient(st))

	r.Get("/dishes", handlers.ListDishes(st))
	r.Post("/dishes", handlers.CreateDish(st))

	r.Get("/menu", handlers.Menu(st))

	r.Get("/students", handlers.ListStudents(st))
	r.Post("/students", handlers.RegisterStudent(st))
	r.Get("/students/{id}", handlers.GetStudent(st))
	r.Get("/students/{id}/qr.png", handlers.StudentQR(st))

	return r
}
