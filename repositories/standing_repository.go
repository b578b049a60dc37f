package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrStandingNotFound   = errors.New("standing not found")
	ErrStandingConflict   = errors.New("standing already exists for this tournament and team")
	ErrStandingInvalidRef = errors.New("standing tournament or team invalid")
)

type StandingRepository interface {
	Create(ctx context.Context, standing *models.Standing) error
	GetByID(ctx context.Context, id int) (*models.Standing, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Standing, error)
	HistoryByTeam(ctx context.Context, teamID int) ([]models.TeamHistoryEntry, error)
	Update(ctx context.Context, standing *models.Standing) error
	Delete(ctx context.Context, id int) error
}

type postgresStandingRepository struct {
	db *sql.DB
}

func NewPostgresStandingRepository(db *sql.DB) StandingRepository {
	return &postgresStandingRepository{db: db}
}

func (r *postgresStandingRepository) Create(ctx context.Context, standing *models.Standing) error {
	query := `
		INSERT INTO standings (tournament_id, team_id, place)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		standing.TournamentID, standing.TeamID, standing.Place,
	).Scan(&standing.ID)

	return r.handleStandingError(err)
}

func (r *postgresStandingRepository) GetByID(ctx context.Context, id int) (*models.Standing, error) {
	query := `
		SELECT s.id, s.tournament_id, t.name, s.team_id, tm.name, s.place
		FROM standings s
		JOIN tournaments t ON t.id = s.tournament_id
		JOIN teams tm ON tm.id = s.team_id
		WHERE s.id = $1`

	s := &models.Standing{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.TournamentID, &s.TournamentName, &s.TeamID, &s.TeamName, &s.Place,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStandingNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByTournament — таблица турнира по возрастанию места.
func (r *postgresStandingRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Standing, error) {
	query := `
		SELECT s.id, s.tournament_id, t.name, s.team_id, tm.name, s.place
		FROM standings s
		JOIN tournaments t ON t.id = s.tournament_id
		JOIN teams tm ON tm.id = s.team_id
		WHERE s.tournament_id = $1
		ORDER BY s.place ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]models.Standing, 0)
	for rows.Next() {
		var s models.Standing
		scanErr := rows.Scan(&s.ID, &s.TournamentID, &s.TournamentName, &s.TeamID, &s.TeamName, &s.Place)
		if scanErr != nil {
			return nil, scanErr
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

// HistoryByTeam — выступления команды, свежие турниры первыми.
func (r *postgresStandingRepository) HistoryByTeam(ctx context.Context, teamID int) ([]models.TeamHistoryEntry, error) {
	query := `
		SELECT t.id, t.name, g.title, t.start_date, t.end_date, s.place
		FROM standings s
		JOIN tournaments t ON t.id = s.tournament_id
		JOIN games g ON g.id = t.game_id
		WHERE s.team_id = $1
		ORDER BY t.start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]models.TeamHistoryEntry, 0)
	for rows.Next() {
		var e models.TeamHistoryEntry
		scanErr := rows.Scan(&e.TournamentID, &e.TournamentName, &e.GameTitle, &e.StartDate, &e.EndDate, &e.Place)
		if scanErr != nil {
			return nil, scanErr
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (r *postgresStandingRepository) Update(ctx context.Context, standing *models.Standing) error {
	query := `UPDATE standings SET tournament_id = $1, team_id = $2, place = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		standing.TournamentID, standing.TeamID, standing.Place, standing.ID,
	)
	if err != nil {
		return r.handleStandingError(err)
	}
	return checkAffectedRows(result, ErrStandingNotFound)
}

func (r *postgresStandingRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM standings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStandingNotFound)
}

func (r *postgresStandingRepository) handleStandingError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "standings_tournament_id_team_id_key" {
				return ErrStandingConflict
			}
		case "23503":
			return ErrStandingInvalidRef
		}
	}
	return err
}
