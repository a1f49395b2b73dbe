// Package http реализует маршрутизацию HTTP-слоя сервера Mesto.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - проверку JWT-токенов сессии на защищённых маршрутах.
package http

import (
	"net/http"

	"github.com/Julia-Rulova/mesto-api/internal/server/api"
	"github.com/Julia-Rulova/mesto-api/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты /signup, /signin и GET /cards;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов (профили и мутации карточек).
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
	r.Get("/cards", h.ListCards) // просмотр карточек доступен без входа

	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка токена сессии
		r.Use(h.Verifier.AuthMiddleware())

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/me", h.GetMe)
			r.Patch("/me", h.UpdateProfile)
			r.Patch("/me/avatar", h.UpdateAvatar)
			r.Get("/{userId}", h.GetUser)
		})

		// мутации карточек регистрируются помаршрутно: GET /cards публичный,
		// поэтому суброутер на /cards здесь не монтируется
		r.Post("/cards", h.CreateCard)
		r.Delete("/cards/{cardId}", h.DeleteCard) // удаление по id (без проверки владельца)
		r.Put("/cards/{cardId}/likes", h.LikeCard)
		r.Delete("/cards/{cardId}/likes", h.DislikeCard)
	})

	return r
}
