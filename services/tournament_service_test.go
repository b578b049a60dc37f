package services

import (
	"testing"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentValidate(t *testing.T) {
	svc := &tournamentService{}

	base := TournamentInput{
		Name:      "Autumn Major",
		GameID:    1,
		StartDate: "2025-09-01",
		EndDate:   "2025-09-10",
		PrizePool: 50000,
	}

	t.Run("defaults", func(t *testing.T) {
		got, err := svc.validate(base)
		require.NoError(t, err)
		assert.Equal(t, models.FormatPlayoff, got.Format)
		assert.Equal(t, models.TournamentStatusRegistration, got.Status)
	})

	t.Run("legacy status normalized", func(t *testing.T) {
		input := base
		input.Status = "Идёт"
		got, err := svc.validate(input)
		require.NoError(t, err)
		assert.Equal(t, models.TournamentStatusRunning, got.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		input := base
		input.Status = "paused"
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrTournamentInvalidStatus)
	})

	t.Run("end before start", func(t *testing.T) {
		input := base
		input.EndDate = "2025-08-01"
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrTournamentInvalidDateRange)
	})

	t.Run("single day allowed", func(t *testing.T) {
		input := base
		input.EndDate = input.StartDate
		_, err := svc.validate(input)
		assert.NoError(t, err)
	})

	t.Run("missing game", func(t *testing.T) {
		input := base
		input.GameID = 0
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("bad date format", func(t *testing.T) {
		input := base
		input.StartDate = "01.09.2025"
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		input := base
		input.Format = "swiss"
		_, err := svc.validate(input)
		assert.ErrorIs(t, err, ErrTournamentInvalidFormat)
	})
}

func TestTodayTruncatesTime(t *testing.T) {
	now := time.Date(2025, 7, 15, 23, 59, 59, 0, time.UTC)
	got := today(now)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), got)
}
