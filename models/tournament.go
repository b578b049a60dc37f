package models

import "time"

// Tournament представляет турнир по одной из игр.
type Tournament struct {
	ID        int              `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	GameID    int              `json:"game" db:"game_id"`
	GameTitle string           `json:"game_title" db:"-"`
	StartDate time.Time        `json:"start_date" db:"start_date"`
	EndDate   time.Time        `json:"end_date" db:"end_date"`
	PrizePool float64          `json:"prize_pool" db:"prize_pool"`
	Format    TournamentFormat `json:"format" db:"format"`
	Status    TournamentStatus `json:"status" db:"status"`
}

// TournamentPage — составная проекция для страницы турнира.
type TournamentPage struct {
	Tournament Tournament `json:"tournament"`
	Teams      []Team     `json:"teams"`
	Matches    []Match    `json:"matches"`
	Standings  []Standing `json:"standings"`
}
