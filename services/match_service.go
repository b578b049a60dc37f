package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

const defaultUpcomingMatchesLimit = 20

type MatchInput struct {
	TournamentID int    `json:"tournament"`
	Team1ID      int    `json:"team1"`
	Team2ID      int    `json:"team2"`
	MatchDate    string `json:"match_date"` // RFC3339 либо YYYY-MM-DD
	Round        string `json:"round"`
	Status       string `json:"status"`
}

type MatchResultInput struct {
	WinnerID   *int    `json:"winner"`
	ScoreTeam1 int     `json:"score_team1"`
	ScoreTeam2 int     `json:"score_team2"`
	Details    *string `json:"details"`
}

type MatchService interface {
	Create(ctx context.Context, input MatchInput) (*models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, filter repositories.ListMatchesFilter) ([]models.Match, error)
	ListUpcoming(ctx context.Context, limit int) ([]models.Match, error)
	FinalWinner(ctx context.Context, tournamentID int) (*models.FinalWinner, error)
	Update(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	SetResult(ctx context.Context, matchID int, input MatchResultInput) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
	now       func() time.Time
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{matchRepo: matchRepo, now: time.Now}
}

func (s *matchService) Create(ctx context.Context, input MatchInput) (*models.Match, error) {
	match, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, mapMatchError(err)
	}
	// Перечитываем ради проекций с именами турнира и команд.
	return s.GetByID(ctx, match.ID)
}

func (s *matchService) GetByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchError(err)
	}
	return match, nil
}

func (s *matchService) List(ctx context.Context, filter repositories.ListMatchesFilter) ([]models.Match, error) {
	return s.matchRepo.List(ctx, filter)
}

func (s *matchService) ListUpcoming(ctx context.Context, limit int) ([]models.Match, error) {
	if limit <= 0 {
		limit = defaultUpcomingMatchesLimit
	}
	return s.matchRepo.ListUpcoming(ctx, s.now(), limit)
}

func (s *matchService) FinalWinner(ctx context.Context, tournamentID int) (*models.FinalWinner, error) {
	if tournamentID == 0 {
		return nil, ErrTournamentIDRequired
	}
	return s.matchRepo.FinalWinner(ctx, tournamentID)
}

func (s *matchService) Update(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	match, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	match.ID = id
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, mapMatchError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *matchService) SetResult(ctx context.Context, matchID int, input MatchResultInput) (*models.Match, error) {
	match, err := s.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if input.WinnerID != nil && *input.WinnerID != match.Team1ID && *input.WinnerID != match.Team2ID {
		return nil, ErrValidationFailed
	}

	result := &models.MatchResult{
		MatchID:    matchID,
		WinnerID:   input.WinnerID,
		ScoreTeam1: input.ScoreTeam1,
		ScoreTeam2: input.ScoreTeam2,
		Details:    input.Details,
	}
	if err := s.matchRepo.UpsertResult(ctx, result); err != nil {
		return nil, mapMatchError(err)
	}
	return s.GetByID(ctx, matchID)
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return mapMatchError(err)
	}
	return nil
}

func (s *matchService) validate(input MatchInput) (*models.Match, error) {
	if input.TournamentID == 0 || input.Team1ID == 0 || input.Team2ID == 0 {
		return nil, ErrValidationFailed
	}
	if input.Team1ID == input.Team2ID {
		return nil, ErrMatchSameTeams
	}

	matchDate, err := parseMatchDate(input.MatchDate)
	if err != nil {
		return nil, ErrValidationFailed
	}

	// Как и у турниров: новые записи хранят канонический статус, старые
	// текстовые варианты принимаются и нормализуются.
	status := models.MatchStatusScheduled
	if input.Status != "" {
		normalized, ok := models.NormalizeMatchStatus(input.Status)
		if !ok {
			return nil, ErrMatchInvalidStatus
		}
		status = normalized
	}

	return &models.Match{
		TournamentID: input.TournamentID,
		Team1ID:      input.Team1ID,
		Team2ID:      input.Team2ID,
		MatchDate:    matchDate,
		Round:        strings.TrimSpace(input.Round),
		Status:       status,
	}, nil
}

func parseMatchDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchTournamentInvalid):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrMatchTeamInvalid), errors.Is(err, repositories.ErrMatchWinnerInvalid):
		return ErrTeamNotFound
	default:
		return err
	}
}
