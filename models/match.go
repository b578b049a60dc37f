package models

import "time"

// Match — матч двух команд в рамках турнира.
type Match struct {
	ID             int          `json:"id" db:"id"`
	TournamentID   int          `json:"tournament" db:"tournament_id"`
	TournamentName string       `json:"tournament_name" db:"-"`
	Team1ID        int          `json:"team1" db:"team1_id"`
	Team1Name      string       `json:"team1_name" db:"-"`
	Team2ID        int          `json:"team2" db:"team2_id"`
	Team2Name      string       `json:"team2_name" db:"-"`
	MatchDate      time.Time    `json:"match_date" db:"match_date"`
	Round          string       `json:"round" db:"round"`
	Status         MatchStatus  `json:"status" db:"status"`
	Result         *MatchResult `json:"result"`
}

// MatchResult — результат матча, один к одному с матчем.
// Победитель обнуляется при удалении команды, сама запись остаётся.
type MatchResult struct {
	MatchID    int     `json:"match" db:"match_id"`
	WinnerID   *int    `json:"winner" db:"winner_id"`
	WinnerName *string `json:"winner_name" db:"-"`
	ScoreTeam1 int     `json:"score_team1" db:"score_team1"`
	ScoreTeam2 int     `json:"score_team2" db:"score_team2"`
	Details    *string `json:"details" db:"details"`
}

// TeamMatchSummary — строка выдачи recent_matches для команды.
type TeamMatchSummary struct {
	ID             int       `json:"id"`
	TournamentID   int       `json:"tournament_id"`
	TournamentName string    `json:"tournament_name"`
	MatchDate      time.Time `json:"match_date"`
	Round          string    `json:"round"`
	Status         string    `json:"status"`
	Team1ID        int       `json:"team1_id"`
	Team1Name      string    `json:"team1_name"`
	Team2ID        int       `json:"team2_id"`
	Team2Name      string    `json:"team2_name"`
	Score          *string   `json:"score"`
	WinnerName     *string   `json:"winner_name"`
}

// FinalWinner — ответ эндпоинта final_winner. Winner равен nil, если
// финальный матч не найден, не сыгран или победитель не записан.
type FinalWinner struct {
	MatchID *int    `json:"match_id,omitempty"`
	Winner  *Team   `json:"winner"`
	Score   *string `json:"score,omitempty"`
}
