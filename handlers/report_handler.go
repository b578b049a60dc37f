package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) PopularTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.reportService.PopularTeams(r.Context(), queryLimit(r, "limit"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ReportHandler) TournamentsByGame(w http.ResponseWriter, r *http.Request) {
	games, err := h.reportService.TournamentsByGame(r.Context(), queryLimit(r, "limit"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, games, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
