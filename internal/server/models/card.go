// Серверная модель карточки
package models

import (
	"time"

	"github.com/google/uuid"
)

// Card — карточка (фотография места) с набором лайков.
//
// Owner всегда раскрыт до полного профиля (без хэша пароля).
// Likes — множество id пользователей; дубликатов не бывает,
// уникальность обеспечивается первичным ключом card_likes в БД.
type Card struct {
	ID        uuid.UUID
	Name      string
	Link      string
	Owner     User
	Likes     []uuid.UUID
	CreatedAt time.Time
}
