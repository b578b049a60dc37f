package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type PlayerInput struct {
	Nickname string  `json:"nickname"`
	RealName *string `json:"real_name"`
	TeamID   *int    `json:"team"`
	Role     string  `json:"role"`
}

type PlayerService interface {
	Create(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	Delete(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) Create(ctx context.Context, input PlayerInput) (*models.Player, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, ErrValidationFailed
	}

	player := &models.Player{
		Nickname: nickname,
		RealName: input.RealName,
		TeamID:   input.TeamID,
		Role:     strings.TrimSpace(input.Role),
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, mapPlayerError(err)
	}
	return s.GetByID(ctx, player.ID)
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapPlayerError(err)
	}
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.List(ctx)
}

func (s *playerService) Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, ErrValidationFailed
	}

	player := &models.Player{
		ID:       id,
		Nickname: nickname,
		RealName: input.RealName,
		TeamID:   input.TeamID,
		Role:     strings.TrimSpace(input.Role),
	}
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, mapPlayerError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return mapPlayerError(err)
	}
	return nil
}

func mapPlayerError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrPlayerNicknameConflict):
		return ErrPlayerNicknameConflict
	case errors.Is(err, repositories.ErrPlayerTeamInvalid):
		return ErrTeamNotFound
	default:
		return err
	}
}
