package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentTeamNotFound   = errors.New("tournament team registration not found")
	ErrTournamentTeamConflict   = errors.New("team is already registered for this tournament")
	ErrTournamentTeamInvalidRef = errors.New("tournament or team invalid")
)

type TournamentTeamRepository interface {
	Create(ctx context.Context, tt *models.TournamentTeam) error
	List(ctx context.Context, tournamentID *int) ([]models.TournamentTeam, error)
	RosterByTournament(ctx context.Context, tournamentID int) ([]models.TournamentRosterEntry, error)
	Delete(ctx context.Context, id int) error
}

type postgresTournamentTeamRepository struct {
	db *sql.DB
}

func NewPostgresTournamentTeamRepository(db *sql.DB) TournamentTeamRepository {
	return &postgresTournamentTeamRepository{db: db}
}

func (r *postgresTournamentTeamRepository) Create(ctx context.Context, tt *models.TournamentTeam) error {
	query := `
		INSERT INTO tournament_teams (tournament_id, team_id)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, tt.TournamentID, tt.TeamID).Scan(&tt.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "tournament_teams_tournament_id_team_id_key" {
					return ErrTournamentTeamConflict
				}
			case "23503":
				return ErrTournamentTeamInvalidRef
			}
		}
		return err
	}
	return nil
}

func (r *postgresTournamentTeamRepository) List(ctx context.Context, tournamentID *int) ([]models.TournamentTeam, error) {
	query := `
		SELECT tt.id, tt.tournament_id, t.name, tt.team_id, tm.name
		FROM tournament_teams tt
		JOIN tournaments t ON t.id = tt.tournament_id
		JOIN teams tm ON tm.id = tt.team_id`

	args := []interface{}{}
	if tournamentID != nil {
		query += ` WHERE tt.tournament_id = $1`
		args = append(args, *tournamentID)
	}
	query += ` ORDER BY tt.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.TournamentTeam, 0)
	for rows.Next() {
		var tt models.TournamentTeam
		scanErr := rows.Scan(&tt.ID, &tt.TournamentID, &tt.TournamentName, &tt.TeamID, &tt.TeamName)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, tt)
	}
	return entries, rows.Err()
}

// RosterByTournament возвращает каждую заявленную команду вместе с полным
// составом. Один запрос с LEFT JOIN, группировка по командам в коде.
func (r *postgresTournamentTeamRepository) RosterByTournament(ctx context.Context, tournamentID int) ([]models.TournamentRosterEntry, error) {
	query := `
		SELECT tm.id, tm.name, p.id, p.nickname, p.real_name, p.role
		FROM tournament_teams tt
		JOIN teams tm ON tm.id = tt.team_id
		LEFT JOIN players p ON p.team_id = tm.id
		WHERE tt.tournament_id = $1
		ORDER BY tm.name ASC, p.nickname ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.TournamentRosterEntry, 0)
	index := make(map[int]int) // team_id -> позиция в entries

	for rows.Next() {
		var (
			teamID   int
			teamName string
			playerID sql.NullInt64
			nickname sql.NullString
			realName sql.NullString
			role     sql.NullString
		)
		if err := rows.Scan(&teamID, &teamName, &playerID, &nickname, &realName, &role); err != nil {
			return nil, err
		}

		pos, ok := index[teamID]
		if !ok {
			pos = len(entries)
			index[teamID] = pos
			entries = append(entries, models.TournamentRosterEntry{
				TeamID:   teamID,
				TeamName: teamName,
				Players:  make([]models.Player, 0),
			})
		}

		if playerID.Valid {
			player := models.Player{
				ID:       int(playerID.Int64),
				Nickname: nickname.String,
				TeamID:   &teamID,
				Role:     role.String,
			}
			if realName.Valid {
				rn := realName.String
				player.RealName = &rn
			}
			entries[pos].Players = append(entries[pos].Players, player)
		}
	}
	return entries, rows.Err()
}

func (r *postgresTournamentTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournament_teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentTeamNotFound)
}
