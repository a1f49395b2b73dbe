// HTTP-хендлеры регистрации и входа
package api

import (
	"encoding/json"
	"net/http"

	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле публичный профиль;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 409 Conflict: пользователь с таким email уже существует;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password, req.Name, req.About, req.Avatar)
	if err != nil {
		h.writeDomainError(w, "signup", err)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toUserView(user))
}

// Signin обрабатывает вход пользователя и выдачу токена сессии.
//
// Токен возвращается в теле ответа и одновременно ставится в HttpOnly
// cookie "jwt" (SameSite=Strict), срок жизни cookie равен сроку жизни
// токена. Любая причина отказа — пустые поля, неизвестный email, неверный
// пароль — даёт байт-в-байт одинаковый ответ 401.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeDomainError(w, "signin", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookie.Secure,
		MaxAge:   int(h.accessTTL.Seconds()),
	})

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(sharedModels.SigninResponse{Token: token})
}
