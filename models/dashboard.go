package models

// DashboardStats — сводка для административной панели.
type DashboardStats struct {
	Admin               string `json:"admin"`
	PendingTeams        int    `json:"pending_teams"`
	PendingApplications int    `json:"pending_applications"`
	TeamsTotal          int    `json:"teams_total"`
	TournamentsTotal    int    `json:"tournaments_total"`
	MatchesTotal        int    `json:"matches_total"`
	UsersTotal          int    `json:"users_total"`
}
