package models

import "time"

type FavoriteTournament struct {
	ID             int       `json:"id"`
	UserID         int       `json:"-"`
	TournamentID   int       `json:"tournament"`
	TournamentName string    `json:"tournament_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type FavoriteTeam struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	TeamID    int       `json:"team"`
	TeamName  string    `json:"team_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewHistoryItemType перечисляет допустимые типы просмотренных сущностей.
var ViewHistoryItemTypes = map[string]bool{
	"tournament": true,
	"team":       true,
	"game":       true,
	"match":      true,
}

// ViewHistoryEntry — запись журнала просмотров. Журнал только дописывается.
type ViewHistoryEntry struct {
	ID       int       `json:"id"`
	UserID   int       `json:"-"`
	ItemType string    `json:"item_type"`
	ItemID   int       `json:"item_id"`
	ViewedAt time.Time `json:"viewed_at"`
}
