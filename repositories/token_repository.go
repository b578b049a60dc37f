package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var ErrTokenNotFound = errors.New("auth token not found")

type TokenRepository interface {
	// GetOrCreate возвращает действующий токен пользователя либо сохраняет
	// переданный новый ключ. При гонке двух регистраций выигрывает первая
	// вставка, проигравший получает уже сохранённый токен.
	GetOrCreate(ctx context.Context, userID int, newKey string) (*models.AuthToken, error)
	GetUserByKey(ctx context.Context, key string) (*models.User, error)
	DeleteByUser(ctx context.Context, userID int) error
}

type postgresTokenRepository struct {
	db *sql.DB
}

func NewPostgresTokenRepository(db *sql.DB) TokenRepository {
	return &postgresTokenRepository{db: db}
}

func (r *postgresTokenRepository) GetOrCreate(ctx context.Context, userID int, newKey string) (*models.AuthToken, error) {
	token := &models.AuthToken{UserID: userID}

	err := r.db.QueryRowContext(ctx,
		`SELECT key, created_at FROM auth_tokens WHERE user_id = $1`, userID,
	).Scan(&token.Key, &token.CreatedAt)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO auth_tokens (key, user_id) VALUES ($1, $2) RETURNING key, created_at`,
		newKey, userID,
	).Scan(&token.Key, &token.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// Конкурирующий запрос успел первым — читаем его токен.
			selErr := r.db.QueryRowContext(ctx,
				`SELECT key, created_at FROM auth_tokens WHERE user_id = $1`, userID,
			).Scan(&token.Key, &token.CreatedAt)
			if selErr != nil {
				return nil, selErr
			}
			return token, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *postgresTokenRepository) GetUserByKey(ctx context.Context, key string) (*models.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.is_staff, u.is_active, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsStaff, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *postgresTokenRepository) DeleteByUser(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id = $1`, userID)
	return err
}
