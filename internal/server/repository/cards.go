package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/Julia-Rulova/mesto-api/internal/server/models"
	serr "github.com/Julia-Rulova/mesto-api/internal/shared/errors"
)

// CardsRepository реализует доступ к хранилищу карточек (PostgreSQL).
//
// Лайки хранятся в таблице card_likes с составным первичным ключом
// (card_id, user_id): добавление через INSERT ... ON CONFLICT DO NOTHING
// и удаление через DELETE атомарны на уровне БД, поэтому конкурентные
// лайки/дизлайки не требуют блокировок в процессе и не порождают дублей.
type CardsRepository struct {
	db *sql.DB
}

func NewCardsRepository(db *sql.DB) *CardsRepository {
	return &CardsRepository{db: db}
}

// cardQuery — выборка карточки с раскрытым владельцем и массивом лайков.
// json_agg с FILTER отдаёт '[]' вместо [null] для карточки без лайков.
const cardQuery = `
	SELECT c.id, c.name, c.link, c.created_at,
	       u.id, u.email, u.name, u.about, u.avatar,
	       COALESCE(json_agg(cl.user_id) FILTER (WHERE cl.user_id IS NOT NULL), '[]')
	FROM cards c
	JOIN users u ON u.id = c.owner_id
	LEFT JOIN card_likes cl ON cl.card_id = c.id`

func scanCard(row *sql.Row) (models.Card, error) {
	var (
		c        models.Card
		rawLikes []byte
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Link, &c.CreatedAt,
		&c.Owner.ID, &c.Owner.Email, &c.Owner.Name, &c.Owner.About, &c.Owner.Avatar,
		&rawLikes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Card{}, serr.ErrNotFound
		}
		return models.Card{}, serr.ErrInternal
	}

	if err := json.Unmarshal(rawLikes, &c.Likes); err != nil {
		return models.Card{}, serr.ErrInternal
	}
	if c.Likes == nil {
		c.Likes = []uuid.UUID{}
	}

	return c, nil
}

// Create сохраняет новую карточку и возвращает её с раскрытым владельцем.
//
// Нарушение внешнего ключа owner_id (23503) означает, что пользователь
// из сессии успел исчезнуть — транслируется в ErrNotFound.
func (r *CardsRepository) Create(ctx context.Context, ownerID uuid.UUID, name, link string) (models.Card, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cards (name, link, owner_id)
		 VALUES ($1,$2,$3)
		 RETURNING id`,
		name, link, ownerID,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == pgForeignKeyViolation {
				return models.Card{}, serr.ErrNotFound
			}
		}
		return models.Card{}, serr.ErrInternal
	}

	return r.GetByID(ctx, id)
}

// GetByID возвращает карточку по id. Если карточки нет — ErrNotFound.
func (r *CardsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Card, error) {
	row := r.db.QueryRowContext(ctx,
		cardQuery+`
	WHERE c.id = $1
	GROUP BY c.id, u.id`,
		id,
	)
	return scanCard(row)
}

// List возвращает все карточки, новые первыми.
func (r *CardsRepository) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		cardQuery+`
	GROUP BY c.id, u.id
	ORDER BY c.created_at DESC`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		var (
			c        models.Card
			rawLikes []byte
		)
		err := rows.Scan(
			&c.ID, &c.Name, &c.Link, &c.CreatedAt,
			&c.Owner.ID, &c.Owner.Email, &c.Owner.Name, &c.Owner.About, &c.Owner.Avatar,
			&rawLikes,
		)
		if err != nil {
			return nil, serr.ErrInternal
		}
		if err := json.Unmarshal(rawLikes, &c.Likes); err != nil {
			return nil, serr.ErrInternal
		}
		if c.Likes == nil {
			c.Likes = []uuid.UUID{}
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return cards, nil
}

// Delete удаляет карточку по id и возвращает её последнее состояние.
//
// Проверка владельца здесь сознательно не выполняется — текущий контракт
// API разрешает удаление по id любому аутентифицированному пользователю.
func (r *CardsRepository) Delete(ctx context.Context, id uuid.UUID) (models.Card, error) {
	card, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Card{}, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id=$1`, id)
	if err != nil {
		return models.Card{}, serr.ErrInternal
	}

	// карточку могли удалить конкурентно между SELECT и DELETE
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return models.Card{}, serr.ErrNotFound
	}

	return card, nil
}

// AddLike добавляет лайк пользователя карточке и возвращает её новое состояние.
//
// Операция идемпотентна: ON CONFLICT DO NOTHING делает повторный лайк no-op,
// дубликат в множестве невозможен по первичному ключу card_likes.
func (r *CardsRepository) AddLike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO card_likes (card_id, user_id)
		 VALUES ($1,$2)
		 ON CONFLICT (card_id, user_id) DO NOTHING`,
		cardID, userID,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == pgForeignKeyViolation {
				return models.Card{}, serr.ErrNotFound
			}
		}
		return models.Card{}, serr.ErrInternal
	}

	return r.GetByID(ctx, cardID)
}

// RemoveLike убирает лайк пользователя и возвращает новое состояние карточки.
//
// Удаление отсутствующего лайка — no-op, не ошибка. ErrNotFound возможен
// только если самой карточки нет.
func (r *CardsRepository) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error) {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM card_likes WHERE card_id=$1 AND user_id=$2`,
		cardID, userID,
	)
	if err != nil {
		return models.Card{}, serr.ErrInternal
	}

	return r.GetByID(ctx, cardID)
}
