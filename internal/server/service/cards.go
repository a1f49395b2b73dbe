package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// CardsService реализует бизнес-логику работы с карточками.
//
// Владелец карточки задаётся один раз при создании из сессии и не меняется.
// Лайки — идемпотентные мутации множества: повторный лайк и снятие
// отсутствующего лайка не являются ошибками.
type CardsService struct {
	repo CardsRepo
}

// NewCardsService создаёт новый CardsService.
func NewCardsService(repo CardsRepo) *CardsService {
	return &CardsService{repo: repo}
}

// Create создаёт карточку от имени действующего пользователя.
//
// Валидация:
//   - name обязателен, длина 2..30 символов
//   - link обязателен и должен быть ссылкой на картинку
//
// Уникальность name/link не требуется.
//
// Ошибки:
//   - ErrInvalidInput — поля не проходят схему
func (s *CardsService) Create(ctx context.Context, actingID uuid.UUID, name, link string) (models.Card, error) {
	name = strings.TrimSpace(name)
	link = strings.TrimSpace(link)

	if !validField(name) || !validURL(link) {
		return models.Card{}, serr.ErrInvalidInput
	}

	return s.repo.Create(ctx, actingID, name, link)
}

// List возвращает все карточки с раскрытыми владельцами.
func (s *CardsService) List(ctx context.Context) ([]models.Card, error) {
	return s.repo.List(ctx)
}

// Delete удаляет карточку по id и возвращает её последнее состояние.
//
// Владелец сознательно не проверяется — текущий контракт разрешает
// удаление любому аутентифицированному пользователю.
//
// Ошибки:
//   - ErrNotFound — карточки нет
func (s *CardsService) Delete(ctx context.Context, cardID uuid.UUID) (models.Card, error) {
	return s.repo.Delete(ctx, cardID)
}

// Like добавляет лайк действующего пользователя. Идемпотентна.
//
// Ошибки:
//   - ErrNotFound — карточки нет
func (s *CardsService) Like(ctx context.Context, actingID, cardID uuid.UUID) (models.Card, error) {
	return s.repo.AddLike(ctx, cardID, actingID)
}

// Dislike убирает лайк действующего пользователя. Идемпотентна:
// снятие отсутствующего лайка возвращает карточку без изменений.
//
// Ошибки:
//   - ErrNotFound — карточки нет
func (s *CardsService) Dislike(ctx context.Context, actingID, cardID uuid.UUID) (models.Card, error) {
	return s.repo.RemoveLike(ctx, cardID, actingID)
}
