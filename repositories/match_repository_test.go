package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchRepo(t *testing.T) (*postgresMatchRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgresMatchRepository{db: db}, mock
}

var finalWinnerRows = []string{"id", "score_team1", "score_team2", "w_id", "w_name", "w_logo", "w_country", "w_approved"}

// Без сыгранного финала ответ — пустая структура с nil-победителем,
// а не ошибка "не найдено".
func TestFinalWinnerNoFinal(t *testing.T) {
	repo, mock := newMatchRepo(t)

	mock.ExpectQuery(`lower\(m.round\) = 'финал'`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(finalWinnerRows))

	got, err := repo.FinalWinner(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Winner)
	assert.Nil(t, got.MatchID)
	assert.Nil(t, got.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalWinnerWithResult(t *testing.T) {
	repo, mock := newMatchRepo(t)

	mock.ExpectQuery(`lower\(m.round\) = 'финал'`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(finalWinnerRows).
			AddRow(42, 3, 1, 7, "NAVI", "https://cdn.example/logos/7", "UA", true))

	got, err := repo.FinalWinner(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got.MatchID)
	assert.Equal(t, 42, *got.MatchID)
	require.NotNil(t, got.Score)
	assert.Equal(t, "3:1", *got.Score)
	require.NotNil(t, got.Winner)
	assert.Equal(t, "NAVI", got.Winner.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Финал записан, но победитель не проставлен — winner остаётся nil.
func TestFinalWinnerWithoutWinnerRecorded(t *testing.T) {
	repo, mock := newMatchRepo(t)

	mock.ExpectQuery(`lower\(m.round\) = 'финал'`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(finalWinnerRows).
			AddRow(42, nil, nil, nil, nil, nil, nil, nil))

	got, err := repo.FinalWinner(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got.MatchID)
	assert.Nil(t, got.Winner)
	assert.Nil(t, got.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUpcomingPassesLimitAndSynonyms(t *testing.T) {
	repo, mock := newMatchRepo(t)

	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`m.match_date >= \$1\s+AND \(lower\(m.status\) = ANY\(\$2\) OR m.status IS NULL OR m.status = ''\)`).
		WithArgs(now, sqlmock.AnyArg(), 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tournament_id", "t_name", "team1_id", "t1_name", "team2_id", "t2_name",
			"match_date", "round", "status",
			"r_match_id", "r_winner_id", "w_name", "score1", "score2", "details",
		}))

	got, err := repo.ListUpcoming(context.Background(), now, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
