package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type TournamentInput struct {
	Name      string  `json:"name"`
	GameID    int     `json:"game"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   string  `json:"end_date"`
	PrizePool float64 `json:"prize_pool"`
	Format    string  `json:"format"`
	Status    string  `json:"status"`
}

type TournamentService interface {
	Create(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	ListCurrent(ctx context.Context) ([]models.Tournament, error)
	ListUpcoming(ctx context.Context) ([]models.Tournament, error)
	Page(ctx context.Context, id int) (*models.TournamentPage, error)
	Update(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error)
	Delete(ctx context.Context, id int) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	standingRepo   repositories.StandingRepository
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		now:            time.Now,
	}
}

func (s *tournamentService) Create(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	t, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		return nil, mapTournamentError(err)
	}
	// Перечитываем, чтобы вернуть game_title.
	return s.GetByID(ctx, t.ID)
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTournamentError(err)
	}
	return t, nil
}

func (s *tournamentService) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	return s.tournamentRepo.List(ctx, filter)
}

func (s *tournamentService) ListCurrent(ctx context.Context) ([]models.Tournament, error) {
	return s.tournamentRepo.ListCurrent(ctx, today(s.now()))
}

func (s *tournamentService) ListUpcoming(ctx context.Context) ([]models.Tournament, error) {
	return s.tournamentRepo.ListUpcoming(ctx, today(s.now()))
}

// Page собирает составную страницу турнира: сам турнир, заявленные
// команды, матчи и таблицу.
func (s *tournamentService) Page(ctx context.Context, id int) (*models.TournamentPage, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	standings, err := s.standingRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.TournamentPage{
		Tournament: *t,
		Teams:      teams,
		Matches:    matches,
		Standings:  standings,
	}, nil
}

func (s *tournamentService) Update(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error) {
	t, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if err := s.tournamentRepo.Update(ctx, t); err != nil {
		return nil, mapTournamentError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *tournamentService) Delete(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return mapTournamentError(err)
	}
	return nil
}

func (s *tournamentService) validate(input TournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.GameID == 0 {
		return nil, ErrValidationFailed
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, ErrValidationFailed
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, ErrValidationFailed
	}
	if endDate.Before(startDate) {
		return nil, ErrTournamentInvalidDateRange
	}

	format := models.TournamentFormat(input.Format)
	if input.Format == "" {
		format = models.FormatPlayoff
	}
	if !format.Valid() {
		return nil, ErrTournamentInvalidFormat
	}

	// Новые записи хранят только канонические статусы; унаследованные
	// текстовые варианты принимаются и нормализуются на входе.
	status := models.TournamentStatusRegistration
	if input.Status != "" {
		normalized, ok := models.NormalizeTournamentStatus(input.Status)
		if !ok {
			return nil, ErrTournamentInvalidStatus
		}
		status = normalized
	}

	return &models.Tournament{
		Name:      name,
		GameID:    input.GameID,
		StartDate: startDate,
		EndDate:   endDate,
		PrizePool: input.PrizePool,
		Format:    format,
		Status:    status,
	}, nil
}

func mapTournamentError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrTournamentInvalidGame):
		return ErrGameNotFound
	default:
		return err
	}
}

// today обрезает время до даты в локальной таймзоне сервера.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
