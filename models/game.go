package models

// Game — дисциплина (игра), по которой проводятся турниры.
type Game struct {
	ID    int    `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Genre string `json:"genre" db:"genre"`
}

// GameTournamentCount — строка отчёта "турниры по играм".
type GameTournamentCount struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Genre            string `json:"genre"`
	TournamentsCount int    `json:"tournaments_count"`
}
