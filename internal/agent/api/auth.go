// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

import (
	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /signup и возвращает созданного пользователя
// (без пароля). В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Signup(email, password, name, about, avatar string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PostJSON("/signup", sharedModels.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
		About:    about,
		Avatar:   avatar,
	}, &resp, "")
	return resp, err
}

// Signin выполняет вход пользователя и получает токен сессии.
//
// Метод отправляет POST запрос на /signin и возвращает SigninResponse с токеном.
// Сервер дополнительно выставляет cookie jwt, но CLI-клиенту она не нужна:
// токен сохраняется локально и передаётся через Authorization: Bearer.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Signin(email, password string) (sharedModels.SigninResponse, error) {
	var resp sharedModels.SigninResponse
	err := c.PostJSON("/signin", sharedModels.SigninRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
