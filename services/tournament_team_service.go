package services

import (
	"context"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type TournamentTeamInput struct {
	TournamentID int `json:"tournament"`
	TeamID       int `json:"team"`
}

// TournamentTeamService управляет связками "команда заявлена на турнир".
type TournamentTeamService interface {
	Create(ctx context.Context, input TournamentTeamInput) (*models.TournamentTeam, error)
	List(ctx context.Context, tournamentID *int) ([]models.TournamentTeam, error)
	RosterByTournament(ctx context.Context, tournamentID int) ([]models.TournamentRosterEntry, error)
	Delete(ctx context.Context, id int) error
}

type tournamentTeamService struct {
	tournamentTeamRepo repositories.TournamentTeamRepository
}

func NewTournamentTeamService(tournamentTeamRepo repositories.TournamentTeamRepository) TournamentTeamService {
	return &tournamentTeamService{tournamentTeamRepo: tournamentTeamRepo}
}

func (s *tournamentTeamService) Create(ctx context.Context, input TournamentTeamInput) (*models.TournamentTeam, error) {
	if input.TournamentID == 0 || input.TeamID == 0 {
		return nil, ErrValidationFailed
	}

	tt := &models.TournamentTeam{
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
	}
	if err := s.tournamentTeamRepo.Create(ctx, tt); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentTeamConflict):
			return nil, ErrDuplicateRegistration
		case errors.Is(err, repositories.ErrTournamentTeamInvalidRef):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tt, nil
}

func (s *tournamentTeamService) List(ctx context.Context, tournamentID *int) ([]models.TournamentTeam, error) {
	return s.tournamentTeamRepo.List(ctx, tournamentID)
}

func (s *tournamentTeamService) RosterByTournament(ctx context.Context, tournamentID int) ([]models.TournamentRosterEntry, error) {
	if tournamentID == 0 {
		return nil, ErrTournamentIDRequired
	}
	return s.tournamentTeamRepo.RosterByTournament(ctx, tournamentID)
}

func (s *tournamentTeamService) Delete(ctx context.Context, id int) error {
	err := s.tournamentTeamRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTournamentTeamNotFound) {
		return ErrNotFound
	}
	return err
}
