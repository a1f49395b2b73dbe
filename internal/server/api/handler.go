// Package api реализует HTTP-слой сервера Mesto.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - преобразование серверных моделей в wire-модели ответов.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Julia-Rulova/mesto-api/internal/server/config"
	"github.com/Julia-Rulova/mesto-api/internal/server/middleware"
	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	"github.com/Julia-Rulova/mesto-api/internal/server/service"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
	"github.com/Julia-Rulova/mesto-api/internal/shared/logger"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier

	cookie    config.CookieConfig
	accessTTL time.Duration
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации,
// cfg — конфиг (нужны параметры cookie с токеном сессии).
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, cfg *config.Config) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,

		cookie:    cfg.Auth.Cookie,
		accessTTL: cfg.Auth.AccessTTL,
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(sharedModels.ErrorResponse{
		Error: err.Error(),
	})
}

// StatusOf транслирует доменную ошибку в HTTP-статус.
//
// Любая ошибка вне фиксированной таксономии считается внутренней (500).
func StatusOf(err error) int {
	switch {
	case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrBadJSON):
		return http.StatusBadRequest
	case errors.Is(err, serr.ErrInvalidCredentials), errors.Is(err, serr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serr.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError — единая точка трансляции ошибок на границе API.
//
// Доменная ошибка уходит клиенту со своим стабильным сообщением;
// всё внутреннее (ошибки драйвера БД и прочее) наружу не протекает:
// клиент видит generic "internal error", детали пишутся в лог.
func (h *Handler) writeDomainError(w http.ResponseWriter, op string, err error, kv ...any) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		h.Log.Logger.Sugar().Errorw(op+" failed", append([]any{"error", err}, kv...)...)
		WriteError(w, status, serr.ErrInternal)
		return
	}
	WriteError(w, status, err)
}

// actingUserID достаёт id действующего пользователя из контекста сессии.
//
// Вызывается только под AuthMiddleware. Отсутствие id или subject,
// не являющийся UUID, означают негодный токен — это 401.
func (h *Handler) actingUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sub, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// toUserView переводит серверную модель пользователя в wire-модель.
// Хэш пароля в wire-модели отсутствует как поле, утечь он не может.
func toUserView(u models.User) sharedModels.User {
	return sharedModels.User{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}

// toCardView переводит серверную модель карточки в wire-модель.
func toCardView(c models.Card) sharedModels.Card {
	likes := make([]string, 0, len(c.Likes))
	for _, id := range c.Likes {
		likes = append(likes, id.String())
	}

	return sharedModels.Card{
		ID:        c.ID.String(),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     toUserView(c.Owner),
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}
