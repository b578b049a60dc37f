package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerNicknameConflict = errors.New("player nickname conflict")
	ErrPlayerTeamInvalid      = errors.New("player team conflict or invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (nickname, real_name, team_id, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Nickname, player.RealName, player.TeamID, player.Role,
	).Scan(&player.ID)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT p.id, p.nickname, p.real_name, p.team_id, t.name, p.role
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.id = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID, &player.Nickname, &player.RealName, &player.TeamID, &player.TeamName, &player.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT p.id, p.nickname, p.real_name, p.team_id, t.name, p.role
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		ORDER BY p.nickname ASC`

	return r.queryPlayers(ctx, query)
}

// ListByTeamID возвращает состав команды, упорядоченный по никнейму.
func (r *postgresPlayerRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `
		SELECT p.id, p.nickname, p.real_name, p.team_id, t.name, p.role
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.team_id = $1
		ORDER BY p.nickname ASC`

	return r.queryPlayers(ctx, query, teamID)
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET nickname = $1, real_name = $2, team_id = $3, role = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		player.Nickname, player.RealName, player.TeamID, player.Role, player.ID,
	)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) queryPlayers(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		scanErr := rows.Scan(&p.ID, &p.Nickname, &p.RealName, &p.TeamID, &p.TeamName, &p.Role)
		if scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "players_nickname_key" {
				return ErrPlayerNicknameConflict
			}
		case "23503":
			if pqErr.Constraint == "players_team_id_fkey" {
				return ErrPlayerTeamInvalid
			}
		}
	}
	return err
}
