package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/services"
)

type CabinetHandler struct {
	cabinetService services.CabinetService
}

func NewCabinetHandler(cabinetService services.CabinetService) *CabinetHandler {
	return &CabinetHandler{cabinetService: cabinetService}
}

func (h *CabinetHandler) ListFavoriteTournaments(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	favorites, err := h.cabinetService.ListFavoriteTournaments(r.Context(), user.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, favorites, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CabinetHandler) AddFavoriteTournament(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		TournamentID int `json:"tournament"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	favorite, err := h.cabinetService.AddFavoriteTournament(r.Context(), user.ID, input.TournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, favorite, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CabinetHandler) RemoveFavoriteTournament(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.cabinetService.RemoveFavoriteTournament(r.Context(), user.ID, id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CabinetHandler) ListFavoriteTeams(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	favorites, err := h.cabinetService.ListFavoriteTeams(r.Context(), user.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, favorites, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CabinetHandler) AddFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		TeamID int `json:"team"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	favorite, err := h.cabinetService.AddFavoriteTeam(r.Context(), user.ID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, favorite, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CabinetHandler) RemoveFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.cabinetService.RemoveFavoriteTeam(r.Context(), user.ID, id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CabinetHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	history, err := h.cabinetService.ListHistory(r.Context(), user.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, history, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CabinetHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		ItemType string `json:"item_type"`
		ItemID   int    `json:"item_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.cabinetService.AddHistory(r.Context(), user.ID, input.ItemType, input.ItemID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, entry, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
