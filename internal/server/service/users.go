package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// UsersService реализует бизнес-логику работы с профилями пользователей.
//
// Все мутации принимают id действующего пользователя из сессии: обновить
// чужой профиль через этот сервис нельзя, целевой id из запроса не берётся.
type UsersService struct {
	repo UsersRepo
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(repo UsersRepo) *UsersService {
	return &UsersService{repo: repo}
}

// GetByID возвращает публичный профиль пользователя по id.
//
// Ошибки:
//   - ErrNotFound — пользователь не существует
func (s *UsersService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List возвращает все публичные профили.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile обновляет имя и описание действующего пользователя.
//
// Валидация: оба поля обязательны, длина 2..30 символов.
//
// Ошибки:
//   - ErrInvalidInput — поля не проходят схему
//   - ErrNotFound — запись пользователя исчезла конкурентно
func (s *UsersService) UpdateProfile(ctx context.Context, actingID uuid.UUID, name, about string) (models.User, error) {
	name = strings.TrimSpace(name)
	about = strings.TrimSpace(about)

	if !validField(name) || !validField(about) {
		return models.User{}, serr.ErrInvalidInput
	}

	return s.repo.UpdateProfile(ctx, actingID, name, about)
}

// UpdateAvatar обновляет аватар действующего пользователя.
//
// Ошибки:
//   - ErrInvalidInput — ссылка не похожа на URL картинки
//   - ErrNotFound — запись пользователя исчезла конкурентно
func (s *UsersService) UpdateAvatar(ctx context.Context, actingID uuid.UUID, avatar string) (models.User, error) {
	avatar = strings.TrimSpace(avatar)

	if !validURL(avatar) {
		return models.User{}, serr.ErrInvalidInput
	}

	return s.repo.UpdateAvatar(ctx, actingID, avatar)
}
