// HTTP-хендлеры карточек
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// ListCards возвращает все карточки с раскрытыми владельцами.
//
// Единственный публичный ресурсный эндпоинт: аутентификация не требуется.
//
// @Summary      List cards
// @Description  Returns all cards with expanded owner profiles, newest first.
// @Tags         cards
// @Produce      json
// @Success      200 {object} models.CardsResponse
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /cards [get]
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Svc.Cards.List(r.Context())
	if err != nil {
		h.writeDomainError(w, "list cards", err)
		return
	}

	data := make([]sharedModels.Card, 0, len(cards))
	for _, c := range cards {
		data = append(data, toCardView(c))
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(sharedModels.CardsResponse{Data: data})
}

// CreateCard создаёт новую карточку от имени действующего пользователя.
//
// Владельцем становится пользователь из сессии; передать другого владельца
// невозможно. Уникальность name/link не требуется.
//
// @Summary      Create card
// @Description  Creates a card owned by the authenticated user.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateCardRequest true "Create card request"
// @Success      201 {object} models.Card
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /cards [post]
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	card, err := h.Svc.Cards.Create(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		h.writeDomainError(w, "create card", err, "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCardView(card))
}

// DeleteCard удаляет карточку по id и возвращает её последнее состояние.
//
// Владелец карточки не проверяется — удаление по id доступно любому
// аутентифицированному пользователю (текущий контракт API).
//
// @Summary      Delete card
// @Description  Deletes a card by id and returns its last state.
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} models.Card
// @Failure      400 {object} models.ErrorResponse "Invalid id format"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "Card not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /cards/{cardId} [delete]
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardId"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	card, err := h.Svc.Cards.Delete(r.Context(), cardID)
	if err != nil {
		h.writeDomainError(w, "delete card", err, "card_id", cardID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toCardView(card))
}

// LikeCard добавляет лайк действующего пользователя карточке.
//
// Операция идемпотентна: повторный лайк не меняет множество и не является
// ошибкой, в ответе карточка с актуальным набором лайков.
func (h *Handler) LikeCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardId"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	card, err := h.Svc.Cards.Like(r.Context(), userID, cardID)
	if err != nil {
		h.writeDomainError(w, "like card", err, "card_id", cardID.String(), "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toCardView(card))
}

// DislikeCard убирает лайк действующего пользователя с карточки.
//
// Снятие отсутствующего лайка — no-op, в ответе карточка без изменений.
func (h *Handler) DislikeCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardId"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	card, err := h.Svc.Cards.Dislike(r.Context(), userID, cardID)
	if err != nil {
		h.writeDomainError(w, "dislike card", err, "card_id", cardID.String(), "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toCardView(card))
}
