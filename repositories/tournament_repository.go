package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentInvalidGame = errors.New("invalid game reference")
)

type ListTournamentsFilter struct {
	GameID   *int
	Status   *string
	DateFrom *time.Time // end_date >= DateFrom
	DateTo   *time.Time // start_date <= DateTo
}

type TournamentRepository interface {
	Create(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	ListCurrent(ctx context.Context, today time.Time) ([]models.Tournament, error)
	ListUpcoming(ctx context.Context, today time.Time) ([]models.Tournament, error)
	ListCurrentForTeam(ctx context.Context, teamID int, today time.Time) ([]models.Tournament, error)
	Update(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `
	t.id, t.name, t.game_id, g.title, t.start_date, t.end_date, t.prize_pool, t.format, t.status`

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, game_id, start_date, end_date, prize_pool, format, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.GameID, t.StartDate, t.EndDate, t.PrizePool, t.Format, t.Status,
	).Scan(&t.ID)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournaments t
		JOIN games g ON g.id = t.game_id
		WHERE t.id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.GameID, &t.GameTitle, &t.StartDate, &t.EndDate, &t.PrizePool, &t.Format, &t.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournaments t
		JOIN games g ON g.id = t.game_id
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.GameID != nil {
		query += fmt.Sprintf(" AND t.game_id = $%d", argID)
		args = append(args, *filter.GameID)
		argID++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argID)
		args = append(args, *filter.Status)
		argID++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND t.end_date >= $%d", argID)
		args = append(args, *filter.DateFrom)
		argID++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND t.start_date <= $%d", argID)
		args = append(args, *filter.DateTo)
		argID++
	}

	query += " ORDER BY t.start_date DESC, t.id DESC"

	return r.queryTournaments(ctx, query, args...)
}

// ListCurrent возвращает идущие турниры: сегодняшняя дата внутри
// [start_date, end_date] либо статус из унаследованного набора "идёт".
func (r *postgresTournamentRepository) ListCurrent(ctx context.Context, today time.Time) ([]models.Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournaments t
		JOIN games g ON g.id = t.game_id
		WHERE (t.start_date <= $1 AND t.end_date >= $1)
		   OR lower(t.status) = ANY($2)
		ORDER BY t.start_date ASC, t.id ASC`

	return r.queryTournaments(ctx, query, today, pq.Array(lowerAll(models.RunningStatusSynonyms)))
}

// ListUpcoming возвращает будущие турниры: start_date позже сегодняшней
// либо статус из набора "регистрация".
func (r *postgresTournamentRepository) ListUpcoming(ctx context.Context, today time.Time) ([]models.Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournaments t
		JOIN games g ON g.id = t.game_id
		WHERE t.start_date > $1
		   OR lower(t.status) = ANY($2)
		ORDER BY t.start_date ASC, t.id ASC`

	return r.queryTournaments(ctx, query, today, pq.Array(lowerAll(models.RegistrationStatusSynonyms)))
}

// ListCurrentForTeam возвращает актуальные турниры команды. Участие
// учитывается и через tournament_teams, и через сыгранные матчи.
func (r *postgresTournamentRepository) ListCurrentForTeam(ctx context.Context, teamID int, today time.Time) ([]models.Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournaments t
		JOIN games g ON g.id = t.game_id
		WHERE t.id IN (
			SELECT tt.tournament_id FROM tournament_teams tt WHERE tt.team_id = $1
			UNION
			SELECT m.tournament_id FROM matches m WHERE m.team1_id = $1 OR m.team2_id = $1
		)
		AND (t.end_date >= $2 OR t.start_date >= $2)
		ORDER BY t.start_date ASC, t.id ASC`

	return r.queryTournaments(ctx, query, teamID, today)
}

func (r *postgresTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	query := `
		UPDATE tournaments SET
			name = $1,
			game_id = $2,
			start_date = $3,
			end_date = $4,
			prize_pool = $5,
			format = $6,
			status = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.GameID, t.StartDate, t.EndDate, t.PrizePool, t.Format, t.Status, t.ID,
	)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournaments`).Scan(&count)
	return count, err
}

func (r *postgresTournamentRepository) queryTournaments(ctx context.Context, query string, args ...interface{}) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		scanErr := rows.Scan(
			&t.ID, &t.Name, &t.GameID, &t.GameTitle, &t.StartDate, &t.EndDate, &t.PrizePool, &t.Format, &t.Status,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		if pqErr.Constraint == "tournaments_game_id_fkey" {
			return ErrTournamentInvalidGame
		}
	}
	return err
}
