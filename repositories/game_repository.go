package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameTitleConflict = errors.New("game title conflict")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id int) error
	TournamentCounts(ctx context.Context, limit int) ([]models.GameTournamentCount, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `INSERT INTO games (title, genre) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, game.Title, game.Genre).Scan(&game.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "games_title_key" {
				return ErrGameTitleConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT id, title, genre FROM games WHERE id = $1`

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&game.ID, &game.Title, &game.Genre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (r *postgresGameRepository) List(ctx context.Context) ([]models.Game, error) {
	query := `SELECT id, title, genre FROM games ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Genre); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *postgresGameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `UPDATE games SET title = $1, genre = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, game.Title, game.Genre, game.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "games_title_key" {
				return ErrGameTitleConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

// TournamentCounts возвращает игры по убыванию числа турниров (отчёт
// tournaments-by-game). Равные значения упорядочены по названию.
func (r *postgresGameRepository) TournamentCounts(ctx context.Context, limit int) ([]models.GameTournamentCount, error) {
	query := `
		SELECT g.id, g.title, g.genre, COUNT(t.id) AS tournaments_count
		FROM games g
		LEFT JOIN tournaments t ON t.game_id = g.id
		GROUP BY g.id, g.title, g.genre
		ORDER BY tournaments_count DESC, g.title ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]models.GameTournamentCount, 0)
	for rows.Next() {
		var c models.GameTournamentCount
		if err := rows.Scan(&c.ID, &c.Title, &c.Genre, &c.TournamentsCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
