package models

// Player — игрок; может не состоять ни в одной команде.
type Player struct {
	ID       int     `json:"id" db:"id"`
	Nickname string  `json:"nickname" db:"nickname"`
	RealName *string `json:"real_name" db:"real_name"`
	TeamID   *int    `json:"team" db:"team_id"`
	TeamName *string `json:"team_name,omitempty" db:"-"`
	Role     string  `json:"role" db:"role"`
}
