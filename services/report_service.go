package services

import (
	"context"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

const defaultReportLimit = 10

// ReportService — агрегатные отчёты для главной страницы и аналитики.
type ReportService interface {
	PopularTeams(ctx context.Context, limit int) ([]models.TeamParticipations, error)
	TournamentsByGame(ctx context.Context, limit int) ([]models.GameTournamentCount, error)
}

type reportService struct {
	teamRepo repositories.TeamRepository
	gameRepo repositories.GameRepository
}

func NewReportService(teamRepo repositories.TeamRepository, gameRepo repositories.GameRepository) ReportService {
	return &reportService{teamRepo: teamRepo, gameRepo: gameRepo}
}

func (s *reportService) PopularTeams(ctx context.Context, limit int) ([]models.TeamParticipations, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	return s.teamRepo.ParticipationCounts(ctx, limit)
}

func (s *reportService) TournamentsByGame(ctx context.Context, limit int) ([]models.GameTournamentCount, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	return s.gameRepo.TournamentCounts(ctx, limit)
}
