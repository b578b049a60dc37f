package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/services"
)

type TournamentTeamHandler struct {
	tournamentTeamService services.TournamentTeamService
}

func NewTournamentTeamHandler(tournamentTeamService services.TournamentTeamService) *TournamentTeamHandler {
	return &TournamentTeamHandler{tournamentTeamService: tournamentTeamService}
}

func (h *TournamentTeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.TournamentTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tt, err := h.tournamentTeamService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, tt, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentTeamHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryInt(r, "tournament")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.tournamentTeamService.List(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RosterByTournament требует tournament_id — без него 400.
func (h *TournamentTeamHandler) RosterByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryInt(r, "tournament_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if tournamentID == nil {
		mapServiceErrorToHTTP(w, r, services.ErrTournamentIDRequired)
		return
	}

	roster, err := h.tournamentTeamService.RosterByTournament(r.Context(), *tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, roster, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentTeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentTeamService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
