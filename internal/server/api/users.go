// HTTP-хендлеры профилей пользователей
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// ListUsers возвращает всех пользователей (публичные профили).
//
// Требует JWT-аутентификацию.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.writeDomainError(w, "list users", err)
		return
	}

	data := make([]sharedModels.User, 0, len(users))
	for _, u := range users {
		data = append(data, toUserView(u))
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(sharedModels.UsersResponse{Data: data})
}

// GetMe возвращает профиль действующего пользователя.
//
// Требует JWT-аутентификацию.
//
// Возможные ошибки:
//   - 401 Unauthorized: пользователь не аутентифицирован;
//   - 404 Not Found: запись пользователя исчезла;
//   - 500 Internal Server Error: ошибка доступа к хранилищу.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Users.GetByID(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "get me", err, "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toUserView(user))
}

// GetUser возвращает профиль пользователя по id из URL.
//
// Некорректный формат id — это 400, отсутствие пользователя — 404:
// коды различаются сознательно.
//
// @Summary      Get user
// @Description  Returns the public profile of a user by id.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Invalid id format"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	user, err := h.Svc.Users.GetByID(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "get user", err, "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toUserView(user))
}

// UpdateProfile обновляет имя и описание действующего пользователя.
//
// Целевой пользователь всегда берётся из сессии: передать чужой id
// в этом запросе невозможно, поля id в теле нет.
//
// Ответы:
//   - 200 OK: обновлённый профиль;
//   - 400 Bad Request: неверный JSON или поля не проходят схему;
//   - 401 Unauthorized: пользователь не аутентифицирован;
//   - 404 Not Found: запись пользователя исчезла;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Users.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		h.writeDomainError(w, "update profile", err, "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toUserView(user))
}

// UpdateAvatar обновляет аватар действующего пользователя.
//
// Ответы аналогичны UpdateProfile.
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.UpdateAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := h.actingUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Users.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		h.writeDomainError(w, "update avatar", err, "user_id", userID.String())
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toUserView(user))
}
