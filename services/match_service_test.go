package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchRepo struct {
	repositories.MatchRepository
	gotLimit int
	gotNow   time.Time
}

func (f *fakeMatchRepo) ListUpcoming(_ context.Context, now time.Time, limit int) ([]models.Match, error) {
	f.gotNow = now
	f.gotLimit = limit
	return []models.Match{}, nil
}

func TestMatchValidate(t *testing.T) {
	svc := &matchService{now: time.Now}

	base := MatchInput{
		TournamentID: 1,
		Team1ID:      2,
		Team2ID:      3,
		MatchDate:    "2025-09-05T18:00:00Z",
		Round:        "1/4",
	}

	t.Run("defaults to scheduled", func(t *testing.T) {
		got, err := svc.validate(base)
		require.NoError(t, err)
		assert.Equal(t, models.MatchStatusScheduled, got.Status)
	})

	t.Run("date-only accepted", func(t *testing.T) {
		input := base
		input.MatchDate = "2025-09-05"
		_, err := svc.validate(input)
		assert.NoError(t, err)
	})

	t.Run("same teams rejected", func(t *testing.T) {
		input := base
		input.Team2ID = input.Team1ID
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrMatchSameTeams)
	})

	t.Run("legacy status normalized", func(t *testing.T) {
		input := base
		input.Status = "Запланирован"
		got, err := svc.validate(input)
		require.NoError(t, err)
		assert.Equal(t, models.MatchStatusScheduled, got.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		input := base
		input.Status = "postponed"
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrMatchInvalidStatus)
	})

	t.Run("missing team", func(t *testing.T) {
		input := base
		input.Team2ID = 0
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestListUpcomingDefaultLimit(t *testing.T) {
	repo := &fakeMatchRepo{}
	fixed := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	svc := &matchService{matchRepo: repo, now: func() time.Time { return fixed }}

	_, err := svc.ListUpcoming(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultUpcomingMatchesLimit, repo.gotLimit)
	assert.Equal(t, fixed, repo.gotNow)

	_, err = svc.ListUpcoming(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestFinalWinnerRequiresTournamentID(t *testing.T) {
	svc := &matchService{now: time.Now}
	_, err := svc.FinalWinner(context.Background(), 0)
	assert.ErrorIs(t, err, ErrTournamentIDRequired)
}
