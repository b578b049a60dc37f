package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/Dosada05/esports-db/storage"
)

const historyPageSize = 50

type ProfileUpdateInput struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// CabinetService обслуживает личный кабинет: профиль, избранное, журнал
// просмотров. Все операции работают строго с записями вызывающего.
type CabinetService interface {
	GetProfile(ctx context.Context, userID int) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int, input ProfileUpdateInput) (*models.UserProfile, error)
	UploadAvatar(ctx context.Context, userID int, contentType string, data io.Reader) (*models.UserProfile, error)

	ListFavoriteTournaments(ctx context.Context, userID int) ([]models.FavoriteTournament, error)
	AddFavoriteTournament(ctx context.Context, userID, tournamentID int) (*models.FavoriteTournament, error)
	RemoveFavoriteTournament(ctx context.Context, userID, favoriteID int) error

	ListFavoriteTeams(ctx context.Context, userID int) ([]models.FavoriteTeam, error)
	AddFavoriteTeam(ctx context.Context, userID, teamID int) (*models.FavoriteTeam, error)
	RemoveFavoriteTeam(ctx context.Context, userID, favoriteID int) error

	ListHistory(ctx context.Context, userID int) ([]models.ViewHistoryEntry, error)
	AddHistory(ctx context.Context, userID int, itemType string, itemID int) (*models.ViewHistoryEntry, error)
}

type cabinetService struct {
	profileRepo  repositories.ProfileRepository
	favoriteRepo repositories.FavoriteRepository
	historyRepo  repositories.HistoryRepository
	uploader     storage.FileUploader // nil, если хранилище не настроено
}

func NewCabinetService(
	profileRepo repositories.ProfileRepository,
	favoriteRepo repositories.FavoriteRepository,
	historyRepo repositories.HistoryRepository,
	uploader storage.FileUploader,
) CabinetService {
	return &cabinetService{
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
		historyRepo:  historyRepo,
		uploader:     uploader,
	}
}

func (s *cabinetService) GetProfile(ctx context.Context, userID int) (*models.UserProfile, error) {
	return s.profileRepo.GetOrCreate(ctx, userID)
}

func (s *cabinetService) UpdateProfile(ctx context.Context, userID int, input ProfileUpdateInput) (*models.UserProfile, error) {
	if _, err := s.profileRepo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.profileRepo.Update(ctx, userID, input.Bio, input.AvatarURL)
}

func (s *cabinetService) UploadAvatar(ctx context.Context, userID int, contentType string, data io.Reader) (*models.UserProfile, error) {
	if s.uploader == nil {
		return nil, ErrUploaderNotConfigured
	}
	if _, err := s.profileRepo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%d", userID)
	result, err := s.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.profileRepo.UpdateAvatarURL(ctx, userID, &result.Location); err != nil {
		return nil, err
	}
	return s.profileRepo.GetOrCreate(ctx, userID)
}

func (s *cabinetService) ListFavoriteTournaments(ctx context.Context, userID int) ([]models.FavoriteTournament, error) {
	return s.favoriteRepo.ListTournaments(ctx, userID)
}

func (s *cabinetService) AddFavoriteTournament(ctx context.Context, userID, tournamentID int) (*models.FavoriteTournament, error) {
	fav := &models.FavoriteTournament{UserID: userID, TournamentID: tournamentID}
	if err := s.favoriteRepo.CreateTournament(ctx, fav); err != nil {
		return nil, mapFavoriteError(err)
	}
	return fav, nil
}

func (s *cabinetService) RemoveFavoriteTournament(ctx context.Context, userID, favoriteID int) error {
	err := s.favoriteRepo.DeleteTournament(ctx, userID, favoriteID)
	if errors.Is(err, repositories.ErrFavoriteNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *cabinetService) ListFavoriteTeams(ctx context.Context, userID int) ([]models.FavoriteTeam, error) {
	return s.favoriteRepo.ListTeams(ctx, userID)
}

func (s *cabinetService) AddFavoriteTeam(ctx context.Context, userID, teamID int) (*models.FavoriteTeam, error) {
	fav := &models.FavoriteTeam{UserID: userID, TeamID: teamID}
	if err := s.favoriteRepo.CreateTeam(ctx, fav); err != nil {
		return nil, mapFavoriteError(err)
	}
	return fav, nil
}

func (s *cabinetService) RemoveFavoriteTeam(ctx context.Context, userID, favoriteID int) error {
	err := s.favoriteRepo.DeleteTeam(ctx, userID, favoriteID)
	if errors.Is(err, repositories.ErrFavoriteNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *cabinetService) ListHistory(ctx context.Context, userID int) ([]models.ViewHistoryEntry, error) {
	return s.historyRepo.ListByUser(ctx, userID, historyPageSize)
}

func (s *cabinetService) AddHistory(ctx context.Context, userID int, itemType string, itemID int) (*models.ViewHistoryEntry, error) {
	if !models.ViewHistoryItemTypes[itemType] {
		return nil, ErrInvalidItemType
	}
	entry := &models.ViewHistoryEntry{UserID: userID, ItemType: itemType, ItemID: itemID}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func mapFavoriteError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrFavoriteConflict):
		return ErrDuplicateFavorite
	case errors.Is(err, repositories.ErrFavoriteInvalidRef):
		return ErrNotFound
	default:
		return err
	}
}
