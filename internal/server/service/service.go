// Package service содержит бизнес-логику приложения (mesto).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Julia-Rulova/mesto-api/internal/server/config"
	"github.com/Julia-Rulova/mesto-api/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Cards CardsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
	Cards *CardsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и подписи JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users),
		Cards: NewCardsService(repos.Cards),
	}
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash, name, about, avatar string) (models.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (models.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (models.User, error)
}

// CardsRepo — репозиторий карточек (CRUD + лайки).
type CardsRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, link string) (models.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Card, error)
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error)
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error)
}
