package models

import "strings"

// TournamentStatus представляет канонические статусы турнира.
type TournamentStatus string

const (
	TournamentStatusRegistration TournamentStatus = "registration"
	TournamentStatusRunning      TournamentStatus = "running"
	TournamentStatusFinished     TournamentStatus = "finished"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentStatusRegistration, TournamentStatusRunning, TournamentStatusFinished:
		return true
	}
	return false
}

// TournamentFormat представляет форматы проведения турнира.
type TournamentFormat string

const (
	FormatPlayoff TournamentFormat = "playoff"
	FormatGroups  TournamentFormat = "groups"
	FormatMixed   TournamentFormat = "mixed"
)

func (f TournamentFormat) Valid() bool {
	switch f {
	case FormatPlayoff, FormatGroups, FormatMixed:
		return true
	}
	return false
}

// MatchStatus представляет канонические статусы матча.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusCanceled  MatchStatus = "canceled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusFinished, MatchStatusCanceled:
		return true
	}
	return false
}

// Исторические данные содержат статусы свободным текстом на двух языках.
// Фильтры по статусу обязаны принимать все унаследованные варианты,
// регистронезависимо. Списки совпадают с исходной базой — не сокращать.
var (
	RunningStatusSynonyms = []string{
		"running",
		"идёт", "идет",
		"ongoing", "in_progress", "active",
	}

	RegistrationStatusSynonyms = []string{
		"registration",
		"регистрация",
		"upcoming", "soon",
	}

	ScheduledStatusSynonyms = []string{
		"scheduled",
		"запланирован", "запланировано", "ожидается",
		"upcoming", "planned",
	}
)

var legacyTournamentStatuses = buildLegacyIndex(map[TournamentStatus][]string{
	TournamentStatusRunning:      RunningStatusSynonyms,
	TournamentStatusRegistration: RegistrationStatusSynonyms,
	TournamentStatusFinished:     {"finished", "завершён", "завершен", "completed", "done"},
})

var legacyMatchStatuses = buildLegacyIndex(map[MatchStatus][]string{
	MatchStatusScheduled: ScheduledStatusSynonyms,
	MatchStatusFinished:  {"finished", "завершён", "завершен", "completed"},
	MatchStatusCanceled:  {"canceled", "cancelled", "отменён", "отменен"},
})

func buildLegacyIndex[T ~string](sets map[T][]string) map[string]T {
	index := make(map[string]T)
	for canonical, variants := range sets {
		index[strings.ToLower(string(canonical))] = canonical
		for _, v := range variants {
			index[strings.ToLower(v)] = canonical
		}
	}
	return index
}

// NormalizeTournamentStatus переводит унаследованное текстовое значение
// в канонический статус. Второе значение false — вариант неизвестен.
func NormalizeTournamentStatus(raw string) (TournamentStatus, bool) {
	s, ok := legacyTournamentStatuses[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

// NormalizeMatchStatus — то же для статусов матчей.
func NormalizeMatchStatus(raw string) (MatchStatus, bool) {
	s, ok := legacyMatchStatuses[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}
