package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
)

type ListTeamsFilter struct {
	Country *string // точное совпадение без учёта регистра
	Query   *string // подстрока в названии без учёта регистра
	GameID  *int    // участие в турнирах игры (через tournament_teams или матчи)
}

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateLogoURL(ctx context.Context, id int, logoURL *string) error
	Approve(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
	ParticipationCounts(ctx context.Context, limit int) ([]models.TeamParticipations, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, logo_url, country, is_approved)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		team.Name, team.LogoURL, team.Country, team.IsApproved,
	).Scan(&team.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, logo_url, country, is_approved FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.LogoURL, &team.Country, &team.IsApproved,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// List поддерживает фильтры country/q/game. Фильтр по игре — объединение
// команд, заявленных на турниры игры, и команд, игравших матчи в них.
func (r *postgresTeamRepository) List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error) {
	query := `
		SELECT id, name, logo_url, country, is_approved
		FROM teams
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Country != nil {
		query += fmt.Sprintf(" AND lower(country) = lower($%d)", argID)
		args = append(args, *filter.Country)
		argID++
	}
	if filter.Query != nil {
		query += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", argID)
		args = append(args, *filter.Query)
		argID++
	}
	if filter.GameID != nil {
		query += fmt.Sprintf(`
		AND id IN (
			SELECT tt.team_id
			FROM tournament_teams tt
			JOIN tournaments t ON t.id = tt.tournament_id
			WHERE t.game_id = $%d
			UNION
			SELECT m.team1_id
			FROM matches m
			JOIN tournaments t ON t.id = m.tournament_id
			WHERE t.game_id = $%d
			UNION
			SELECT m.team2_id
			FROM matches m
			JOIN tournaments t ON t.id = m.tournament_id
			WHERE t.game_id = $%d
		)`, argID, argID, argID)
		args = append(args, *filter.GameID)
		argID++
	}

	query += " ORDER BY name ASC"

	return r.queryTeams(ctx, query, args...)
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT tm.id, tm.name, tm.logo_url, tm.country, tm.is_approved
		FROM tournament_teams tt
		JOIN teams tm ON tm.id = tt.team_id
		WHERE tt.tournament_id = $1
		ORDER BY tm.name ASC`

	return r.queryTeams(ctx, query, tournamentID)
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams SET name = $1, logo_url = $2, country = $3, is_approved = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		team.Name, team.LogoURL, team.Country, team.IsApproved, team.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoURL(ctx context.Context, id int, logoURL *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET logo_url = $1 WHERE id = $2`, logoURL, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Approve(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

func (r *postgresTeamRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE is_approved = FALSE`).Scan(&count)
	return count, err
}

// ParticipationCounts — отчёт "популярные команды": число участий в
// турнирах по убыванию, при равенстве — по имени.
func (r *postgresTeamRepository) ParticipationCounts(ctx context.Context, limit int) ([]models.TeamParticipations, error) {
	query := `
		SELECT tm.id, tm.name, tm.country, tm.logo_url, COUNT(tt.id) AS participations
		FROM teams tm
		LEFT JOIN tournament_teams tt ON tt.team_id = tm.id
		GROUP BY tm.id, tm.name, tm.country, tm.logo_url
		ORDER BY participations DESC, tm.name ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]models.TeamParticipations, 0)
	for rows.Next() {
		var c models.TeamParticipations
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.LogoURL, &c.Participations); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *postgresTeamRepository) queryTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LogoURL, &t.Country, &t.IsApproved); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
