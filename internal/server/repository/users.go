// Package repository реализует доступ к хранилищу данных (PostgreSQL).
// Слой отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// Коды ошибок PostgreSQL, по которым восстанавливаем доменную ошибку.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя и возвращает его профиль.
//
// Уникальность email обеспечивает БД: нарушение уникального индекса (23505)
// транслируется в ErrAlreadyExists — это страховка на случай гонки
// двух одновременных регистраций с одним email.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash, name, about, avatar string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, name, about, avatar)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, email, name, about, avatar, created_at`,
		email, passwordHash, name, about, avatar,
	).Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == pgUniqueViolation {
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmailWithPassword возвращает пользователя вместе с хэшем пароля.
//
// Единственная выборка, которая читает password_hash — используется только
// логином. Все остальные методы репозитория хэш не возвращают.
func (r *UsersRepository) GetByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, about, avatar, created_at
		 FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.About, &u.Avatar, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByID возвращает публичный профиль пользователя (без хэша пароля).
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, about, avatar, created_at
		 FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// List возвращает всех пользователей (публичные профили).
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, name, about, avatar, created_at
		 FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// UpdateProfile обновляет имя и описание пользователя и возвращает
// обновлённый профиль. Если записи нет — ErrNotFound.
func (r *UsersRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET name=$2, about=$3
		 WHERE id=$1
		 RETURNING id, email, name, about, avatar, created_at`,
		id, name, about,
	).Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// UpdateAvatar обновляет аватар пользователя и возвращает обновлённый профиль.
func (r *UsersRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET avatar=$2
		 WHERE id=$1
		 RETURNING id, email, name, about, avatar, created_at`,
		id, avatar,
	).Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
