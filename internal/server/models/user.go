// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — пользователь Mesto.
//
// PasswordHash никогда не сериализуется наружу: репозитории возвращают его
// только в рамках логина, во всех остальных выборках поле пустое.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
}
