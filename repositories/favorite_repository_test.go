package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dosada05/esports-db/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteRepo(t *testing.T) (*postgresFavoriteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgresFavoriteRepository{db: db}, mock
}

// Повторная вставка той же пары (user, team) упирается в уникальный
// индекс и должна отдаваться как конфликт, а не сырая ошибка драйвера.
func TestCreateFavoriteTeamDuplicate(t *testing.T) {
	repo, mock := newFavoriteRepo(t)

	mock.ExpectQuery(`INSERT INTO favorite_teams`).
		WithArgs(1, 7).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "favorite_teams_user_id_team_id_key"})

	err := repo.CreateTeam(context.Background(), &models.FavoriteTeam{UserID: 1, TeamID: 7})
	assert.ErrorIs(t, err, ErrFavoriteConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFavoriteTournamentInvalidRef(t *testing.T) {
	repo, mock := newFavoriteRepo(t)

	mock.ExpectQuery(`INSERT INTO favorite_tournaments`).
		WithArgs(1, 999).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "favorite_tournaments_tournament_id_fkey"})

	err := repo.CreateTournament(context.Background(), &models.FavoriteTournament{UserID: 1, TournamentID: 999})
	assert.ErrorIs(t, err, ErrFavoriteInvalidRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Удаление всегда ограничено владельцем: чужая запись выглядит как
// отсутствующая.
func TestDeleteFavoriteTeamScopedToOwner(t *testing.T) {
	repo, mock := newFavoriteRepo(t)

	mock.ExpectExec(`DELETE FROM favorite_teams WHERE id = \$1 AND user_id = \$2`).
		WithArgs(5, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTeam(context.Background(), 2, 5)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
