// Package models содержит wire-модели HTTP API, общие для сервера и CLI-клиента.
//
// Сервер сериализует эти структуры в ответах, клиент декодирует их же,
// поэтому контракт описан в одном месте.
package models

import "time"

// User — публичный профиль пользователя.
//
// Хэш пароля в wire-модель не входит принципиально: серверная модель
// его несёт только внутри процесса, наружу поле не сериализуется.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

// Card — карточка с раскрытым владельцем и множеством лайков.
//
// Likes — массив id пользователей. Порядок не специфицирован,
// дубликатов не бывает (лайк идемпотентен).
type Card struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     User      `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupRequest — тело запроса регистрации.
//
// Обязательны email и password; профильные поля опциональны,
// при отсутствии сервер подставит дефолты.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	About    string `json:"about,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// SigninRequest — тело запроса входа.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninResponse — успешный ответ входа.
//
// Токен дублируется в теле и в HttpOnly cookie "jwt":
// браузерный фронтенд работает через cookie, CLI — через тело.
type SigninResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest — тело запроса обновления имени и описания.
// Цель обновления всегда берётся из сессии, id в запросе не передаётся.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// UpdateAvatarRequest — тело запроса обновления аватара.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// CreateCardRequest — тело запроса создания карточки.
// Владельцем становится аутентифицированный пользователь.
type CreateCardRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// UsersResponse — ответ списочного эндпоинта пользователей.
type UsersResponse struct {
	Data []User `json:"data"`
}

// CardsResponse — ответ списочного эндпоинта карточек.
type CardsResponse struct {
	Data []Card `json:"data"`
}

// ErrorResponse — стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}
