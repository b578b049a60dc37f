package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/esports-db/middleware"
	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCabinetService struct {
	services.CabinetService
	existing map[int]bool // team_id -> уже в избранном
}

func (f *fakeCabinetService) AddFavoriteTeam(_ context.Context, userID, teamID int) (*models.FavoriteTeam, error) {
	if f.existing[teamID] {
		return nil, services.ErrDuplicateFavorite
	}
	f.existing[teamID] = true
	return &models.FavoriteTeam{ID: 1, UserID: userID, TeamID: teamID}, nil
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	user := &models.User{ID: 1, Username: "alice", IsActive: true}
	return req.WithContext(middleware.WithUser(req.Context(), user))
}

// Повторное добавление той же команды в избранное — 400, не 409.
func TestAddFavoriteTeamDuplicateIsBadRequest(t *testing.T) {
	h := NewCabinetHandler(&fakeCabinetService{existing: map[int]bool{}})

	rec := httptest.NewRecorder()
	h.AddFavoriteTeam(rec, authedRequest(http.MethodPost, "/api/me/favorites/teams", `{"team": 7}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.AddFavoriteTeam(rec, authedRequest(http.MethodPost, "/api/me/favorites/teams", `{"team": 7}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddFavoriteTeamRequiresAuth(t *testing.T) {
	h := NewCabinetHandler(&fakeCabinetService{existing: map[int]bool{}})

	req := httptest.NewRequest(http.MethodPost, "/api/me/favorites/teams", strings.NewReader(`{"team": 7}`))
	rec := httptest.NewRecorder()

	h.AddFavoriteTeam(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
