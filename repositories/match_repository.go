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
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
	ErrMatchTeamInvalid       = errors.New("match team conflict or invalid")
	ErrMatchWinnerInvalid     = errors.New("match result winner conflict or invalid")
)

type ListMatchesFilter struct {
	TournamentID *int
	TeamID       *int // матчи, где команда с любой стороны
	Status       *string
	DateFrom     *time.Time // по компоненте даты match_date
	DateTo       *time.Time
	Query        *string // подстрока в названии любой из команд
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Match, error)
	RecentByTeam(ctx context.Context, teamID int, limit int) ([]models.TeamMatchSummary, error)
	FinalWinner(ctx context.Context, tournamentID int) (*models.FinalWinner, error)
	Update(ctx context.Context, match *models.Match) error
	UpsertResult(ctx context.Context, result *models.MatchResult) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	m.id, m.tournament_id, t.name, m.team1_id, t1.name, m.team2_id, t2.name,
	m.match_date, m.round, m.status,
	r.match_id, r.winner_id, w.name, r.score_team1, r.score_team2, r.details`

const matchJoins = `
	FROM matches m
	JOIN tournaments t ON t.id = m.tournament_id
	JOIN teams t1 ON t1.id = m.team1_id
	JOIN teams t2 ON t2.id = m.team2_id
	LEFT JOIN match_results r ON r.match_id = m.id
	LEFT JOIN teams w ON w.id = r.winner_id`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, team1_id, team2_id, match_date, round, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		match.TournamentID, match.Team1ID, match.Team2ID, match.MatchDate, match.Round, match.Status,
	).Scan(&match.ID)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT` + matchColumns + matchJoins + ` WHERE m.id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error) {
	query := `SELECT` + matchColumns + matchJoins + ` WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.TournamentID != nil {
		query += fmt.Sprintf(" AND m.tournament_id = $%d", argID)
		args = append(args, *filter.TournamentID)
		argID++
	}
	if filter.TeamID != nil {
		query += fmt.Sprintf(" AND (m.team1_id = $%d OR m.team2_id = $%d)", argID, argID)
		args = append(args, *filter.TeamID)
		argID++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND m.status = $%d", argID)
		args = append(args, *filter.Status)
		argID++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND m.match_date::date >= $%d", argID)
		args = append(args, *filter.DateFrom)
		argID++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND m.match_date::date <= $%d", argID)
		args = append(args, *filter.DateTo)
		argID++
	}
	if filter.Query != nil {
		query += fmt.Sprintf(" AND (t1.name ILIKE '%%' || $%d || '%%' OR t2.name ILIKE '%%' || $%d || '%%')", argID, argID)
		args = append(args, *filter.Query)
		argID++
	}

	query += " ORDER BY m.match_date ASC"

	return r.queryMatches(ctx, query, args...)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := `SELECT` + matchColumns + matchJoins + `
	WHERE m.tournament_id = $1
	ORDER BY m.match_date ASC`

	return r.queryMatches(ctx, query, tournamentID)
}

// ListUpcoming — будущие матчи: дата не раньше текущего момента, статус
// из унаследованного набора "запланирован" либо пустой.
func (r *postgresMatchRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Match, error) {
	query := `SELECT` + matchColumns + matchJoins + `
	WHERE m.match_date >= $1
	  AND (lower(m.status) = ANY($2) OR m.status IS NULL OR m.status = '')
	ORDER BY m.match_date ASC
	LIMIT $3`

	return r.queryMatches(ctx, query, now, pq.Array(lowerAll(models.ScheduledStatusSynonyms)), limit)
}

// RecentByTeam — последние матчи команды, новые первыми. Счёт
// форматируется как "score_team1:score_team2", если результат записан.
func (r *postgresMatchRepository) RecentByTeam(ctx context.Context, teamID int, limit int) ([]models.TeamMatchSummary, error) {
	query := `SELECT` + matchColumns + matchJoins + `
	WHERE m.team1_id = $1 OR m.team2_id = $1
	ORDER BY m.match_date DESC
	LIMIT $2`

	matches, err := r.queryMatches(ctx, query, teamID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TeamMatchSummary, 0, len(matches))
	for _, m := range matches {
		s := models.TeamMatchSummary{
			ID:             m.ID,
			TournamentID:   m.TournamentID,
			TournamentName: m.TournamentName,
			MatchDate:      m.MatchDate,
			Round:          m.Round,
			Status:         string(m.Status),
			Team1ID:        m.Team1ID,
			Team1Name:      m.Team1Name,
			Team2ID:        m.Team2ID,
			Team2Name:      m.Team2Name,
		}
		if m.Result != nil {
			score := fmt.Sprintf("%d:%d", m.Result.ScoreTeam1, m.Result.ScoreTeam2)
			s.Score = &score
			s.WinnerName = m.Result.WinnerName
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// FinalWinner возвращает победителя финального матча турнира. Раунд
// сопоставляется со строкой "финал" без учёта регистра — так он записан
// в исходных данных. Winner остаётся nil, если финал не найден, не
// завершён или победитель не указан.
func (r *postgresMatchRepository) FinalWinner(ctx context.Context, tournamentID int) (*models.FinalWinner, error) {
	query := `
		SELECT m.id, r.score_team1, r.score_team2,
		       w.id, w.name, w.logo_url, w.country, w.is_approved
		FROM matches m
		LEFT JOIN match_results r ON r.match_id = m.id
		LEFT JOIN teams w ON w.id = r.winner_id
		WHERE m.tournament_id = $1
		  AND lower(m.round) = 'финал'
		  AND m.status = 'finished'
		ORDER BY m.id ASC
		LIMIT 1`

	var (
		matchID      int
		score1       sql.NullInt64
		score2       sql.NullInt64
		winnerID     sql.NullInt64
		winnerName   sql.NullString
		winnerLogo   sql.NullString
		winnerGeo    sql.NullString
		winnerApprvd sql.NullBool
	)

	err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(
		&matchID, &score1, &score2,
		&winnerID, &winnerName, &winnerLogo, &winnerGeo, &winnerApprvd,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.FinalWinner{}, nil
		}
		return nil, err
	}

	fw := &models.FinalWinner{MatchID: &matchID}
	if score1.Valid && score2.Valid {
		score := fmt.Sprintf("%d:%d", score1.Int64, score2.Int64)
		fw.Score = &score
	}
	if winnerID.Valid {
		team := &models.Team{
			ID:         int(winnerID.Int64),
			Name:       winnerName.String,
			Country:    winnerGeo.String,
			IsApproved: winnerApprvd.Bool,
		}
		if winnerLogo.Valid {
			logo := winnerLogo.String
			team.LogoURL = &logo
		}
		fw.Winner = team
	}
	return fw, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			tournament_id = $1, team1_id = $2, team2_id = $3,
			match_date = $4, round = $5, status = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		match.TournamentID, match.Team1ID, match.Team2ID,
		match.MatchDate, match.Round, match.Status, match.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpsertResult(ctx context.Context, result *models.MatchResult) error {
	query := `
		INSERT INTO match_results (match_id, winner_id, score_team1, score_team2, details)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id) DO UPDATE SET
			winner_id = EXCLUDED.winner_id,
			score_team1 = EXCLUDED.score_team1,
			score_team2 = EXCLUDED.score_team2,
			details = EXCLUDED.details`

	_, err := r.db.ExecContext(ctx, query,
		result.MatchID, result.WinnerID, result.ScoreTeam1, result.ScoreTeam2, result.Details,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "match_results_match_id_fkey":
				return ErrMatchNotFound
			case "match_results_winner_id_fkey":
				return ErrMatchWinnerInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var (
		m          models.Match
		status     sql.NullString
		resMatchID sql.NullInt64
		winnerID   sql.NullInt64
		winnerName sql.NullString
		score1     sql.NullInt64
		score2     sql.NullInt64
		details    sql.NullString
	)

	err := row.Scan(
		&m.ID, &m.TournamentID, &m.TournamentName, &m.Team1ID, &m.Team1Name, &m.Team2ID, &m.Team2Name,
		&m.MatchDate, &m.Round, &status,
		&resMatchID, &winnerID, &winnerName, &score1, &score2, &details,
	)
	if err != nil {
		return nil, err
	}

	m.Status = models.MatchStatus(status.String)

	if resMatchID.Valid {
		result := &models.MatchResult{
			MatchID:    int(resMatchID.Int64),
			ScoreTeam1: int(score1.Int64),
			ScoreTeam2: int(score2.Int64),
		}
		if winnerID.Valid {
			id := int(winnerID.Int64)
			result.WinnerID = &id
		}
		if winnerName.Valid {
			name := winnerName.String
			result.WinnerName = &name
		}
		if details.Valid {
			d := details.String
			result.Details = &d
		}
		m.Result = result
	}
	return &m, nil
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		switch pqErr.Constraint {
		case "matches_tournament_id_fkey":
			return ErrMatchTournamentInvalid
		case "matches_team1_id_fkey", "matches_team2_id_fkey":
			return ErrMatchTeamInvalid
		}
	}
	return err
}
