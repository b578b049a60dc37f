package models

// TournamentTeam — запись об участии команды в турнире, независимая
// от сыгранных матчей.
type TournamentTeam struct {
	ID             int    `json:"id" db:"id"`
	TournamentID   int    `json:"tournament" db:"tournament_id"`
	TournamentName string `json:"tournament_name" db:"-"`
	TeamID         int    `json:"team" db:"team_id"`
	TeamName       string `json:"team_name" db:"-"`
}

// TournamentRosterEntry — команда турнира вместе с полным составом.
type TournamentRosterEntry struct {
	TeamID   int      `json:"team_id"`
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}
