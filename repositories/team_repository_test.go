package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamRepo(t *testing.T) (*postgresTeamRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgresTeamRepository{db: db}, mock
}

var teamRows = []string{"id", "name", "logo_url", "country", "is_approved"}

// Фильтр по игре объединяет участие через tournament_teams и обе стороны
// матчей; один и тот же параметр переиспользуется во всех трёх подзапросах.
func TestTeamListGameFilterUnionsParticipation(t *testing.T) {
	repo, mock := newTeamRepo(t)

	gameID := 3
	mock.ExpectQuery(`AND id IN \((.|\n)+SELECT tt.team_id(.|\n)+UNION(.|\n)+SELECT m.team1_id(.|\n)+UNION(.|\n)+SELECT m.team2_id(.|\n)+\)`).
		WithArgs(gameID).
		WillReturnRows(sqlmock.NewRows(teamRows).
			AddRow(1, "Alpha", nil, "KZ", true).
			AddRow(2, "Beta", nil, "RU", true))

	got, err := repo.List(context.Background(), ListTeamsFilter{GameID: &gameID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamListCountryAndQuery(t *testing.T) {
	repo, mock := newTeamRepo(t)

	country := "KZ"
	q := "alp"
	mock.ExpectQuery(`AND lower\(country\) = lower\(\$1\) AND name ILIKE '%' \|\| \$2 \|\| '%' ORDER BY name ASC`).
		WithArgs(country, q).
		WillReturnRows(sqlmock.NewRows(teamRows).AddRow(1, "Alpha", nil, "KZ", true))

	got, err := repo.List(context.Background(), ListTeamsFilter{Country: &country, Query: &q})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamApproveNotFound(t *testing.T) {
	repo, mock := newTeamRepo(t)

	mock.ExpectExec(`UPDATE teams SET is_approved = TRUE WHERE id = \$1`).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Approve(context.Background(), 11)
	assert.ErrorIs(t, err, ErrTeamNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
