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

type fakeMatchService struct {
	services.MatchService
	winner *models.FinalWinner
}

func (f *fakeMatchService) FinalWinner(_ context.Context, tournamentID int) (*models.FinalWinner, error) {
	if tournamentID == 0 {
		return nil, services.ErrTournamentIDRequired
	}
	return f.winner, nil
}

// Контракт: без сыгранного финала в ответе буквально {"winner": null}.
func TestFinalWinnerNullWhenAbsent(t *testing.T) {
	h := NewMatchHandler(&fakeMatchService{winner: &models.FinalWinner{}})

	req := httptest.NewRequest(http.MethodGet, "/api/matches/final_winner?tournament_id=5", nil)
	rec := httptest.NewRecorder()

	h.FinalWinner(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	raw, ok := body["winner"]
	require.True(t, ok, "winner key must always be present")
	assert.Equal(t, "null", string(raw))
	assert.NotContains(t, body, "match_id")
}

func TestFinalWinnerWithRecordedResult(t *testing.T) {
	matchID := 42
	score := "3:1"
	h := NewMatchHandler(&fakeMatchService{winner: &models.FinalWinner{
		MatchID: &matchID,
		Score:   &score,
		Winner:  &models.Team{ID: 7, Name: "NAVI", Country: "UA", IsApproved: true},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/matches/final_winner?tournament_id=5", nil)
	rec := httptest.NewRecorder()

	h.FinalWinner(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Winner  *models.Team `json:"winner"`
		MatchID int          `json:"match_id"`
		Score   string       `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Winner)
	assert.Equal(t, "NAVI", body.Winner.Name)
	assert.Equal(t, 42, body.MatchID)
	assert.Equal(t, "3:1", body.Score)
}

func TestFinalWinnerRequiresTournamentID(t *testing.T) {
	h := NewMatchHandler(&fakeMatchService{})

	req := httptest.NewRequest(http.MethodGet, "/api/matches/final_winner", nil)
	rec := httptest.NewRecorder()

	h.FinalWinner(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
