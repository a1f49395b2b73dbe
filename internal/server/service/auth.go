package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Julia-Rulova/mesto-api/internal/server/config"
	"github.com/Julia-Rulova/mesto-api/internal/server/crypto"
	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// AuthService реализует бизнес-логику регистрации и входа.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля, дефолты профиля)
//   - аутентификация (логин) с единым ответом на любую причину отказа
//   - выпуск JWT-токена сессии
type AuthService struct {
	users UsersRepo

	pass crypto.PasswordParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.PasswordParams{
			Hasher: cfg.Password.Hasher,
			Bcrypt: crypto.BcryptParams{
				Cost: cfg.Password.Bcrypt.Cost,
			},
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 6 символов
//   - профильные поля опциональны; заданные проверяются по схеме,
//     незаданные получают дефолты
//
// Пароль хэшируется до единственного INSERT: если вставка не удалась,
// в хранилище не остаётся ни частичной записи, ни хэша.
//
// Ошибки:
//   - ErrInvalidInput при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password, name, about, avatar string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !validEmail(email) || len(password) < passwordMinLen {
		return models.User{}, serr.ErrInvalidInput
	}

	name = strings.TrimSpace(name)
	about = strings.TrimSpace(about)
	avatar = strings.TrimSpace(avatar)

	if name == "" {
		name = defaultName
	} else if !validField(name) {
		return models.User{}, serr.ErrInvalidInput
	}
	if about == "" {
		about = defaultAbout
	} else if !validField(about) {
		return models.User{}, serr.ErrInvalidInput
	}
	if avatar == "" {
		avatar = defaultAvatar
	} else if !validURL(avatar) {
		return models.User{}, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	return s.users.Create(ctx, email, hash, name, about, avatar)
}

// Login аутентифицирует пользователя и выдаёт токен сессии.
//
// Поведение:
//   - не раскрывает факт существования email: пустые поля, неизвестный
//     email и неверный пароль дают один и тот же ErrInvalidCredentials
//   - сбой самого верификатора пароля — это ErrInternal, не отказ в доступе
//
// Ошибки:
//   - ErrInvalidCredentials
//   - ErrInternal
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidCredentials
	}
	// получаем юзера по email
	user, err := s.users.GetByEmailWithPassword(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// выпускаем токен сессии
	token, err := crypto.NewSessionToken(user.ID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}
