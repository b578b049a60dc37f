package services

import (
	"context"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type StandingInput struct {
	TournamentID int `json:"tournament"`
	TeamID       int `json:"team"`
	Place        int `json:"place"`
}

type StandingService interface {
	Create(ctx context.Context, input StandingInput) (*models.Standing, error)
	GetByID(ctx context.Context, id int) (*models.Standing, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Standing, error)
	Update(ctx context.Context, id int, input StandingInput) (*models.Standing, error)
	Delete(ctx context.Context, id int) error
}

type standingService struct {
	standingRepo repositories.StandingRepository
}

func NewStandingService(standingRepo repositories.StandingRepository) StandingService {
	return &standingService{standingRepo: standingRepo}
}

func (s *standingService) Create(ctx context.Context, input StandingInput) (*models.Standing, error) {
	if err := validateStandingInput(input); err != nil {
		return nil, err
	}

	standing := &models.Standing{
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
		Place:        input.Place,
	}
	if err := s.standingRepo.Create(ctx, standing); err != nil {
		return nil, mapStandingError(err)
	}
	return s.GetByID(ctx, standing.ID)
}

func (s *standingService) GetByID(ctx context.Context, id int) (*models.Standing, error) {
	standing, err := s.standingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStandingError(err)
	}
	return standing, nil
}

func (s *standingService) ListByTournament(ctx context.Context, tournamentID int) ([]models.Standing, error) {
	if tournamentID == 0 {
		return nil, ErrTournamentIDRequired
	}
	return s.standingRepo.ListByTournament(ctx, tournamentID)
}

func (s *standingService) Update(ctx context.Context, id int, input StandingInput) (*models.Standing, error) {
	if err := validateStandingInput(input); err != nil {
		return nil, err
	}

	standing := &models.Standing{
		ID:           id,
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
		Place:        input.Place,
	}
	if err := s.standingRepo.Update(ctx, standing); err != nil {
		return nil, mapStandingError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *standingService) Delete(ctx context.Context, id int) error {
	if err := s.standingRepo.Delete(ctx, id); err != nil {
		return mapStandingError(err)
	}
	return nil
}

func validateStandingInput(input StandingInput) error {
	if input.TournamentID == 0 || input.TeamID == 0 || input.Place <= 0 {
		return ErrValidationFailed
	}
	return nil
}

func mapStandingError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrStandingNotFound):
		return ErrStandingNotFound
	case errors.Is(err, repositories.ErrStandingConflict):
		return ErrDuplicateStanding
	case errors.Is(err, repositories.ErrStandingInvalidRef):
		return ErrNotFound
	default:
		return err
	}
}
