package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var ErrHistoryInvalidUser = errors.New("view history user invalid")

type HistoryRepository interface {
	// Create всегда дописывает запись; журнал не дедуплицируется.
	Create(ctx context.Context, entry *models.ViewHistoryEntry) error
	ListByUser(ctx context.Context, userID, limit int) ([]models.ViewHistoryEntry, error)
}

type postgresHistoryRepository struct {
	db *sql.DB
}

func NewPostgresHistoryRepository(db *sql.DB) HistoryRepository {
	return &postgresHistoryRepository{db: db}
}

func (r *postgresHistoryRepository) Create(ctx context.Context, entry *models.ViewHistoryEntry) error {
	query := `
		INSERT INTO view_history (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
		RETURNING id, viewed_at`

	err := r.db.QueryRowContext(ctx, query, entry.UserID, entry.ItemType, entry.ItemID).
		Scan(&entry.ID, &entry.ViewedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrHistoryInvalidUser
		}
		return err
	}
	return nil
}

func (r *postgresHistoryRepository) ListByUser(ctx context.Context, userID, limit int) ([]models.ViewHistoryEntry, error) {
	query := `
		SELECT id, user_id, item_type, item_id, viewed_at
		FROM view_history
		WHERE user_id = $1
		ORDER BY viewed_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ViewHistoryEntry, 0)
	for rows.Next() {
		var e models.ViewHistoryEntry
		scanErr := rows.Scan(&e.ID, &e.UserID, &e.ItemType, &e.ItemID, &e.ViewedAt)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
