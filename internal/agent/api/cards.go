package api

import (
	"fmt"

	sharedModels "github.com/Julia-Rulova/mesto-api/internal/shared/models"
)

// ListCards загружает все карточки с сервера.
//
// Выполняет запрос:
//
//	GET /cards
//
// Эндпоинт публичный, токен можно не передавать (пустая строка).
//
// Возвращает:
//   - sharedModels.CardsResponse (массив карточек, свежие первыми)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListCards(token string) (sharedModels.CardsResponse, error) {
	var resp sharedModels.CardsResponse
	err := c.GetJSON("/cards", &resp, token)
	return resp, err
}

// CreateCard создаёт новую карточку на сервере.
//
// Выполняет запрос:
//
//	POST /cards
//
// Владельцем карточки становится владелец токена.
//
// Параметры:
//   - token: токен сессии пользователя (Authorization: Bearer <token>)
//   - name: название карточки (2-30 символов)
//   - link: URL изображения
//
// Возвращает:
//   - созданную карточку с развёрнутым владельцем и пустым списком лайков
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateCard(token, name, link string) (sharedModels.Card, error) {
	var resp sharedModels.Card
	err := c.PostJSON("/cards", sharedModels.CreateCardRequest{Name: name, Link: link}, &resp, token)
	return resp, err
}

// DeleteCard удаляет карточку на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /cards/{cardId}
//
// Возвращает удалённую карточку либо ошибку (404, если карточки нет).
func (c *Client) DeleteCard(token, cardID string) (sharedModels.Card, error) {
	var resp sharedModels.Card
	err := c.DeleteJSON(fmt.Sprintf("/cards/%s", cardID), &resp, token)
	return resp, err
}

// LikeCard ставит лайк карточке от имени владельца токена.
//
// Выполняет запрос:
//
//	PUT /cards/{cardId}/likes
//
// Операция идемпотентна: повторный лайк не меняет состояние и не является ошибкой.
// Возвращает карточку с актуальным списком лайков.
func (c *Client) LikeCard(token, cardID string) (sharedModels.Card, error) {
	var resp sharedModels.Card
	err := c.PutJSON(fmt.Sprintf("/cards/%s/likes", cardID), nil, &resp, token)
	return resp, err
}

// DislikeCard снимает лайк с карточки от имени владельца токена.
//
// Выполняет запрос:
//
//	DELETE /cards/{cardId}/likes
//
// Операция идемпотентна: снятие несуществующего лайка — не ошибка.
// Возвращает карточку с актуальным списком лайков.
func (c *Client) DislikeCard(token, cardID string) (sharedModels.Card, error) {
	var resp sharedModels.Card
	err := c.DeleteJSON(fmt.Sprintf("/cards/%s/likes", cardID), &resp, token)
	return resp, err
}
