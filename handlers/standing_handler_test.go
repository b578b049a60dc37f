package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStandingService struct {
	services.StandingService
	standings []models.Standing
}

func (f *fakeStandingService) ListByTournament(_ context.Context, tournamentID int) ([]models.Standing, error) {
	if tournamentID == 0 {
		return nil, services.ErrTournamentIDRequired
	}
	return f.standings, nil
}

func TestStandingsByTournamentRequiresID(t *testing.T) {
	h := NewStandingHandler(&fakeStandingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/standings/by_tournament", nil)
	rec := httptest.NewRecorder()

	h.ByTournament(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "tournament_id")
}

func TestStandingsByTournamentOrderedByPlace(t *testing.T) {
	h := NewStandingHandler(&fakeStandingService{standings: []models.Standing{
		{ID: 1, TournamentID: 5, TeamID: 2, TeamName: "Alpha", Place: 1},
		{ID: 2, TournamentID: 5, TeamID: 3, TeamName: "Beta", Place: 2},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/standings/by_tournament?tournament_id=5", nil)
	rec := httptest.NewRecorder()

	h.ByTournament(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Standing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Place)
	assert.Equal(t, 2, got[1].Place)
}

func TestStandingsByTournamentRejectsGarbageID(t *testing.T) {
	h := NewStandingHandler(&fakeStandingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/standings/by_tournament?tournament_id=abc", nil)
	rec := httptest.NewRecorder()

	h.ByTournament(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
