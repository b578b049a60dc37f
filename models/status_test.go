package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTournamentStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TournamentStatus
		known bool
	}{
		{"canonical running", "running", TournamentStatusRunning, true},
		{"russian running", "Идёт", TournamentStatusRunning, true},
		{"russian running no yo", "идет", TournamentStatusRunning, true},
		{"english ongoing", "ONGOING", TournamentStatusRunning, true},
		{"registration", "регистрация", TournamentStatusRegistration, true},
		{"upcoming maps to registration", "upcoming", TournamentStatusRegistration, true},
		{"finished russian", "Завершён", TournamentStatusFinished, true},
		{"trimmed", "  active  ", TournamentStatusRunning, true},
		{"unknown", "who knows", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTournamentStatus(tt.input)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMatchStatus(t *testing.T) {
	tests := []struct {
		input string
		want  MatchStatus
		known bool
	}{
		{"scheduled", MatchStatusScheduled, true},
		{"Запланирован", MatchStatusScheduled, true},
		{"ожидается", MatchStatusScheduled, true},
		{"planned", MatchStatusScheduled, true},
		{"cancelled", MatchStatusCanceled, true},
		{"отменен", MatchStatusCanceled, true},
		{"completed", MatchStatusFinished, true},
		{"postponed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeMatchStatus(tt.input)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, TournamentStatusRegistration.Valid())
	assert.False(t, TournamentStatus("идёт").Valid(), "legacy variants are not canonical")
	assert.True(t, FormatPlayoff.Valid())
	assert.False(t, TournamentFormat("swiss").Valid())
	assert.True(t, MatchStatusCanceled.Valid())
	assert.False(t, MatchStatus("").Valid())
}

// Синонимы обоих наборов должны нормализоваться в свой канонический статус:
// это страхует списки от случайного расхождения с индексом.
func TestSynonymSetsRoundTrip(t *testing.T) {
	for _, s := range RunningStatusSynonyms {
		got, ok := NormalizeTournamentStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, TournamentStatusRunning, got, s)
	}
	for _, s := range RegistrationStatusSynonyms {
		got, ok := NormalizeTournamentStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, TournamentStatusRegistration, got, s)
	}
	for _, s := range ScheduledStatusSynonyms {
		got, ok := NormalizeMatchStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, MatchStatusScheduled, got, s)
	}
}
