package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrApplicationNotFound       = errors.New("team application not found")
	ErrApplicationInvalidRef     = errors.New("application user or tournament invalid")
	ErrApplicationAlreadyDecided = errors.New("team application already decided")
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.TeamApplication) error
	GetByID(ctx context.Context, id int) (*models.TeamApplication, error)
	ListByUser(ctx context.Context, userID int) ([]models.TeamApplication, error)
	ListPending(ctx context.Context) ([]models.TeamApplication, error)
	// Decide переводит заявку из pending в терминальный статус. Решение
	// атомарно: при гонке двух администраторов выигрывает первый UPDATE.
	Decide(ctx context.Context, id int, status models.ApplicationStatus, comment *string, decidedAt time.Time) error
	CountPending(ctx context.Context) (int, error)
}

type postgresApplicationRepository struct {
	db *sql.DB
}

func NewPostgresApplicationRepository(db *sql.DB) ApplicationRepository {
	return &postgresApplicationRepository{db: db}
}

func (r *postgresApplicationRepository) Create(ctx context.Context, app *models.TeamApplication) error {
	roster, err := json.Marshal(app.Roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	query := `
		INSERT INTO team_applications (kind, user_id, tournament_id, team_name, country, logo_url, roster, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		app.Kind, app.UserID, app.TournamentID, app.TeamName, app.Country, app.LogoURL, roster, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrApplicationInvalidRef
		}
		return err
	}
	return nil
}

func (r *postgresApplicationRepository) GetByID(ctx context.Context, id int) (*models.TeamApplication, error) {
	query := applicationSelect + ` WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *postgresApplicationRepository) ListByUser(ctx context.Context, userID int) ([]models.TeamApplication, error) {
	query := applicationSelect + ` WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryApplications(ctx, query, userID)
}

func (r *postgresApplicationRepository) ListPending(ctx context.Context) ([]models.TeamApplication, error) {
	query := applicationSelect + ` WHERE status = 'pending' ORDER BY created_at ASC`
	return r.queryApplications(ctx, query)
}

func (r *postgresApplicationRepository) Decide(ctx context.Context, id int, status models.ApplicationStatus, comment *string, decidedAt time.Time) error {
	query := `
		UPDATE team_applications
		SET status = $1, admin_comment = $2, decided_at = $3
		WHERE id = $4 AND status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, status, comment, decidedAt, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		// Либо заявки нет, либо она уже решена — различаем отдельным чтением.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrApplicationAlreadyDecided
	}
	return nil
}

func (r *postgresApplicationRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_applications WHERE status = 'pending'`).Scan(&count)
	return count, err
}

const applicationSelect = `
	SELECT id, kind, user_id, tournament_id, team_name, country, logo_url, roster,
	       status, admin_comment, created_at, decided_at
	FROM team_applications`

func scanApplication(row rowScanner) (*models.TeamApplication, error) {
	var (
		app    models.TeamApplication
		roster []byte
	)
	err := row.Scan(
		&app.ID, &app.Kind, &app.UserID, &app.TournamentID, &app.TeamName, &app.Country,
		&app.LogoURL, &roster, &app.Status, &app.AdminComment, &app.CreatedAt, &app.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(roster, &app.Roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return &app, nil
}

func (r *postgresApplicationRepository) queryApplications(ctx context.Context, query string, args ...interface{}) ([]models.TeamApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]models.TeamApplication, 0)
	for rows.Next() {
		app, scanErr := scanApplication(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
