package api

import (
	"fmt"

	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// Me запрашивает профиль текущего пользователя.
//
// Выполняет запрос:
//
//	GET /users/me
//
// Параметры:
//   - token: токен сессии пользователя. Передаётся в заголовке Authorization: Bearer <token>.
//
// Возвращает:
//   - sharedModels.User — профиль владельца токена
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) Me(token string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.GetJSON("/users/me", &resp, token)
	return resp, err
}

// ListUsers загружает список всех пользователей.
//
// Выполняет запрос:
//
//	GET /users
func (c *Client) ListUsers(token string) (sharedModels.UsersResponse, error) {
	var resp sharedModels.UsersResponse
	err := c.GetJSON("/users", &resp, token)
	return resp, err
}

// GetUser загружает профиль пользователя по идентификатору.
//
// Выполняет запрос:
//
//	GET /users/{userId}
func (c *Client) GetUser(token, userID string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.GetJSON(fmt.Sprintf("/users/%s", userID), &resp, token)
	return resp, err
}

// UpdateProfile обновляет имя и описание текущего пользователя.
//
// Выполняет запрос:
//
//	PATCH /users/me
func (c *Client) UpdateProfile(token, name, about string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PatchJSON("/users/me", sharedModels.UpdateProfileRequest{Name: name, About: about}, &resp, token)
	return resp, err
}

// UpdateAvatar обновляет аватар текущего пользователя.
//
// Выполняет запрос:
//
//	PATCH /users/me/avatar
func (c *Client) UpdateAvatar(token, avatar string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PatchJSON("/users/me/avatar", sharedModels.UpdateAvatarRequest{Avatar: avatar}, &resp, token)
	return resp, err
}
