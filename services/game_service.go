package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type GameInput struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type GameService interface {
	Create(ctx context.Context, input GameInput) (*models.Game, error)
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, id int, input GameInput) (*models.Game, error)
	Delete(ctx context.Context, id int) error
}

type gameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) Create(ctx context.Context, input GameInput) (*models.Game, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}

	game := &models.Game{Title: title, Genre: strings.TrimSpace(input.Genre)}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, mapGameError(err)
	}
	return game, nil
}

func (s *gameService) GetByID(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapGameError(err)
	}
	return game, nil
}

func (s *gameService) List(ctx context.Context) ([]models.Game, error) {
	return s.gameRepo.List(ctx)
}

func (s *gameService) Update(ctx context.Context, id int, input GameInput) (*models.Game, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}

	game := &models.Game{ID: id, Title: title, Genre: strings.TrimSpace(input.Genre)}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, mapGameError(err)
	}
	return game, nil
}

func (s *gameService) Delete(ctx context.Context, id int) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		return mapGameError(err)
	}
	return nil
}

func mapGameError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrGameNotFound):
		return ErrGameNotFound
	case errors.Is(err, repositories.ErrGameTitleConflict):
		return ErrGameTitleConflict
	default:
		return err
	}
}
