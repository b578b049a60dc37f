package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTournamentRepo(t *testing.T) (*postgresTournamentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgresTournamentRepository{db: db}, mock
}

var tournamentRows = []string{"id", "name", "game_id", "title", "start_date", "end_date", "prize_pool", "format", "status"}

func TestTournamentGetByIDNotFound(t *testing.T) {
	repo, mock := newTournamentRepo(t)

	mock.ExpectQuery("SELECT(.|\n)+FROM tournaments t(.|\n)+WHERE t.id = \\$1").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows(tournamentRows))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentListAppliesFiltersInOrder(t *testing.T) {
	repo, mock := newTournamentRepo(t)

	gameID := 3
	status := "running"
	dateFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AND t.game_id = \$1 AND t.status = \$2 AND t.end_date >= \$3 ORDER BY t.start_date DESC, t.id DESC`).
		WithArgs(gameID, status, dateFrom).
		WillReturnRows(sqlmock.NewRows(tournamentRows).
			AddRow(7, "Summer Cup", 3, "Dota 2",
				time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
				100000.0, "playoff", "running"))

	got, err := repo.List(context.Background(), ListTournamentsFilter{
		GameID:   &gameID,
		Status:   &status,
		DateFrom: &dateFrom,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Summer Cup", got[0].Name)
	assert.Equal(t, "Dota 2", got[0].GameTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// "Текущие" выбираются по окну дат ИЛИ по унаследованному статусу —
// турнир со статусом "идёт" попадает в выборку даже вне окна.
func TestTournamentListCurrentMatchesDateWindowOrSynonym(t *testing.T) {
	repo, mock := newTournamentRepo(t)

	today := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE \(t.start_date <= \$1 AND t.end_date >= \$1\)\s+OR lower\(t.status\) = ANY\(\$2\)`).
		WithArgs(today, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(tournamentRows).
			AddRow(1, "Ongoing by dates", 1, "CS2",
				time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
				5000.0, "playoff", "registration").
			AddRow(2, "Ongoing by status", 1, "CS2",
				time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
				5000.0, "playoff", "идёт"))

	got, err := repo.ListCurrent(context.Background(), today)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentListCurrentForTeamUnionsParticipation(t *testing.T) {
	repo, mock := newTournamentRepo(t)

	today := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT tt.tournament_id FROM tournament_teams(.|\n)+UNION(.|\n)+SELECT m.tournament_id FROM matches`).
		WithArgs(9, today).
		WillReturnRows(sqlmock.NewRows(tournamentRows))

	got, err := repo.ListCurrentForTeam(context.Background(), 9, today)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
