package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/services"
)

type StandingHandler struct {
	standingService services.StandingService
}

func NewStandingHandler(standingService services.StandingService) *StandingHandler {
	return &StandingHandler{standingService: standingService}
}

func (h *StandingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.StandingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standing, err := h.standingService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, standing, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standing, err := h.standingService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, standing, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ByTournament требует tournament_id — без него 400.
func (h *StandingHandler) ByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryInt(r, "tournament_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if tournamentID == nil {
		mapServiceErrorToHTTP(w, r, services.ErrTournamentIDRequired)
		return
	}

	standings, err := h.standingService.ListByTournament(r.Context(), *tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.StandingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standing, err := h.standingService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, standing, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.standingService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
