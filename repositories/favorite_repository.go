package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
)

var (
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrFavoriteConflict   = errors.New("favorite already exists")
	ErrFavoriteInvalidRef = errors.New("favorite target invalid")
)

type FavoriteRepository interface {
	ListTournaments(ctx context.Context, userID int) ([]models.FavoriteTournament, error)
	CreateTournament(ctx context.Context, fav *models.FavoriteTournament) error
	// DeleteTournament удаляет запись только в рамках владельца: чужой id
	// неотличим от несуществующего.
	DeleteTournament(ctx context.Context, userID, id int) error

	ListTeams(ctx context.Context, userID int) ([]models.FavoriteTeam, error)
	CreateTeam(ctx context.Context, fav *models.FavoriteTeam) error
	DeleteTeam(ctx context.Context, userID, id int) error
}

type postgresFavoriteRepository struct {
	db *sql.DB
}

func NewPostgresFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &postgresFavoriteRepository{db: db}
}

func (r *postgresFavoriteRepository) ListTournaments(ctx context.Context, userID int) ([]models.FavoriteTournament, error) {
	query := `
		SELECT f.id, f.user_id, f.tournament_id, t.name, f.created_at
		FROM favorite_tournaments f
		JOIN tournaments t ON t.id = f.tournament_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.FavoriteTournament, 0)
	for rows.Next() {
		var f models.FavoriteTournament
		scanErr := rows.Scan(&f.ID, &f.UserID, &f.TournamentID, &f.TournamentName, &f.CreatedAt)
		if scanErr != nil {
			return nil, scanErr
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *postgresFavoriteRepository) CreateTournament(ctx context.Context, fav *models.FavoriteTournament) error {
	query := `
		INSERT INTO favorite_tournaments (user_id, tournament_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, fav.UserID, fav.TournamentID).Scan(&fav.ID, &fav.CreatedAt)
	return handleFavoriteError(err)
}

func (r *postgresFavoriteRepository) DeleteTournament(ctx context.Context, userID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorite_tournaments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrFavoriteNotFound)
}

func (r *postgresFavoriteRepository) ListTeams(ctx context.Context, userID int) ([]models.FavoriteTeam, error) {
	query := `
		SELECT f.id, f.user_id, f.team_id, t.name, f.created_at
		FROM favorite_teams f
		JOIN teams t ON t.id = f.team_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.FavoriteTeam, 0)
	for rows.Next() {
		var f models.FavoriteTeam
		scanErr := rows.Scan(&f.ID, &f.UserID, &f.TeamID, &f.TeamName, &f.CreatedAt)
		if scanErr != nil {
			return nil, scanErr
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *postgresFavoriteRepository) CreateTeam(ctx context.Context, fav *models.FavoriteTeam) error {
	query := `
		INSERT INTO favorite_teams (user_id, team_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, fav.UserID, fav.TeamID).Scan(&fav.ID, &fav.CreatedAt)
	return handleFavoriteError(err)
}

func (r *postgresFavoriteRepository) DeleteTeam(ctx context.Context, userID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorite_teams WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrFavoriteNotFound)
}

func handleFavoriteError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrFavoriteConflict
		case "23503":
			return ErrFavoriteInvalidRef
		}
	}
	return err
}
