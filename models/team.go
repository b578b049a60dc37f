package models

import "time"

// Team — команда. Новые команды из заявок создаются неподтверждёнными
// и становятся видимыми в модерации, пока администратор их не подтвердит.
type Team struct {
	ID         int     `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	LogoURL    *string `json:"logo_url" db:"logo_url"`
	Country    string  `json:"country" db:"country"`
	IsApproved bool    `json:"is_approved" db:"is_approved"`
}

// TeamParticipations — строка отчёта "популярные команды".
type TeamParticipations struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	LogoURL        *string `json:"logo_url"`
	Participations int     `json:"participations"`
}

// TeamHistoryEntry — место команды в завершённом турнире.
type TeamHistoryEntry struct {
	TournamentID   int       `json:"tournament_id"`
	TournamentName string    `json:"tournament_name"`
	GameTitle      string    `json:"game_title"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Place          int       `json:"place"`
}
