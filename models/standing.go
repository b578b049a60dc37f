package models

// Standing — итоговое место команды в турнире.
type Standing struct {
	ID             int    `json:"id" db:"id"`
	TournamentID   int    `json:"tournament" db:"tournament_id"`
	TournamentName string `json:"tournament_name,omitempty" db:"-"`
	TeamID         int    `json:"team" db:"team_id"`
	TeamName       string `json:"team_name" db:"-"`
	Place          int    `json:"place" db:"place"`
}
