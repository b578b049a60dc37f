package services

import (
	"context"
	"errors"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"golang.org/x/sync/errgroup"
)

// AdminService — панель администратора: сводная статистика и ручное
// одобрение команд.
type AdminService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	ApproveTeam(ctx context.Context, teamID int) (*models.Team, error)
}

type adminService struct {
	teamRepo        repositories.TeamRepository
	tournamentRepo  repositories.TournamentRepository
	matchRepo       repositories.MatchRepository
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAdminService(
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
) AdminService {
	return &adminService{
		teamRepo:        teamRepo,
		tournamentRepo:  tournamentRepo,
		matchRepo:       matchRepo,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
	}
}

// Dashboard собирает счётчики параллельно: шесть независимых запросов,
// ошибка любого из них отменяет остальные.
func (s *adminService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.teamRepo.CountPending(gctx)
		stats.PendingTeams = count
		return err
	})
	g.Go(func() error {
		count, err := s.applicationRepo.CountPending(gctx)
		stats.PendingApplications = count
		return err
	})
	g.Go(func() error {
		count, err := s.teamRepo.Count(gctx)
		stats.TeamsTotal = count
		return err
	})
	g.Go(func() error {
		count, err := s.tournamentRepo.Count(gctx)
		stats.TournamentsTotal = count
		return err
	})
	g.Go(func() error {
		count, err := s.matchRepo.Count(gctx)
		stats.MatchesTotal = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.Count(gctx)
		stats.UsersTotal = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) ApproveTeam(ctx context.Context, teamID int) (*models.Team, error) {
	if err := s.teamRepo.Approve(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return s.teamRepo.GetByID(ctx, teamID)
}
