package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/Dosada05/esports-db/storage"
)

const defaultRecentMatchesLimit = 10

type TeamInput struct {
	Name       string  `json:"name"`
	LogoURL    *string `json:"logo_url"`
	Country    string  `json:"country"`
	IsApproved *bool   `json:"is_approved"`
}

type TeamService interface {
	Create(ctx context.Context, input TeamInput) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, filter repositories.ListTeamsFilter) ([]models.Team, error)
	Update(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error

	Roster(ctx context.Context, teamID int) ([]models.Player, error)
	CurrentTournaments(ctx context.Context, teamID int) ([]models.Tournament, error)
	History(ctx context.Context, teamID int) ([]models.TeamHistoryEntry, error)
	RecentMatches(ctx context.Context, teamID int, limit int) ([]models.TeamMatchSummary, error)

	UploadLogo(ctx context.Context, teamID int, contentType string, data io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	standingRepo   repositories.StandingRepository
	matchRepo      repositories.MatchRepository
	uploader       storage.FileUploader // nil, если хранилище не настроено
	now            func() time.Time
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	standingRepo repositories.StandingRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		standingRepo:   standingRepo,
		matchRepo:      matchRepo,
		uploader:       uploader,
		now:            time.Now,
	}
}

func (s *teamService) Create(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	team := &models.Team{
		Name:       name,
		LogoURL:    input.LogoURL,
		Country:    strings.TrimSpace(input.Country),
		IsApproved: true,
	}
	if input.IsApproved != nil {
		team.IsApproved = *input.IsApproved
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, mapTeamError(err)
	}
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamError(err)
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context, filter repositories.ListTeamsFilter) ([]models.Team, error) {
	return s.teamRepo.List(ctx, filter)
}

func (s *teamService) Update(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	current.Name = name
	current.Country = strings.TrimSpace(input.Country)
	if input.LogoURL != nil {
		current.LogoURL = input.LogoURL
	}
	if input.IsApproved != nil {
		current.IsApproved = *input.IsApproved
	}

	if err := s.teamRepo.Update(ctx, current); err != nil {
		return nil, mapTeamError(err)
	}
	return current, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return mapTeamError(err)
	}
	return nil
}

func (s *teamService) Roster(ctx context.Context, teamID int) ([]models.Player, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.ListByTeamID(ctx, teamID)
}

func (s *teamService) CurrentTournaments(ctx context.Context, teamID int) ([]models.Tournament, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.tournamentRepo.ListCurrentForTeam(ctx, teamID, today(s.now()))
}

func (s *teamService) History(ctx context.Context, teamID int) ([]models.TeamHistoryEntry, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.standingRepo.HistoryByTeam(ctx, teamID)
}

func (s *teamService) RecentMatches(ctx context.Context, teamID int, limit int) ([]models.TeamMatchSummary, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentMatchesLimit
	}
	return s.matchRepo.RecentByTeam(ctx, teamID, limit)
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, data io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("team-logos/%d", teamID)
	result, err := s.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	if err := s.teamRepo.UpdateLogoURL(ctx, teamID, &result.Location); err != nil {
		return nil, mapTeamError(err)
	}
	return s.GetByID(ctx, teamID)
}

func mapTeamError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamNameConflict
	default:
		return err
	}
}
