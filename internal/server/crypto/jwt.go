// Package crypto содержит криптографические примитивы сервера Mesto.
//
// Пакет отвечает за:
//   - хэширование и проверку паролей пользователей;
//   - генерацию и подпись JWT-токенов сессии;
//   - настройку параметров токенов (issuer, audience, TTL).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации токена сессии.
//
// Ключ подписи один на процесс и прокидывается сюда из конфига при старте —
// никакого глобального состояния в пакете нет.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни токена сессии (по умолчанию 7 дней).
	AccessTTL time.Duration
}

// NewSessionToken создаёт и подписывает JWT-токен сессии пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - iat (IssuedAt)
//   - exp (ExpiresAt = IssuedAt + AccessTTL)
//
// Используется алгоритм подписи HS256. Токен не хранится на сервере:
// единственный механизм инвалидации — истечение exp.
func NewSessionToken(userID string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
