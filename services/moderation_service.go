package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type ApplicationInput struct {
	Kind         string                          `json:"kind"`
	TournamentID int                             `json:"tournament"`
	TeamName     string                          `json:"team_name"`
	Country      string                          `json:"country"`
	LogoURL      *string                         `json:"logo_url"`
	Roster       []models.ApplicationRosterEntry `json:"roster"`
}

type DecisionInput struct {
	Approve      bool    `json:"approve"`
	AdminComment *string `json:"admin_comment"`
}

// ModerationService — заявки на регистрацию команд. Подача доступна
// любому авторизованному пользователю, решения принимает персонал.
type ModerationService interface {
	Submit(ctx context.Context, userID int, input ApplicationInput) (*models.TeamApplication, error)
	ListOwn(ctx context.Context, userID int) ([]models.TeamApplication, error)
	ListPending(ctx context.Context) ([]models.TeamApplication, error)
	Decide(ctx context.Context, id int, input DecisionInput) (*models.TeamApplication, error)
}

type moderationService struct {
	applicationRepo repositories.ApplicationRepository
	now             func() time.Time
}

func NewModerationService(applicationRepo repositories.ApplicationRepository) ModerationService {
	return &moderationService{applicationRepo: applicationRepo, now: time.Now}
}

func (s *moderationService) Submit(ctx context.Context, userID int, input ApplicationInput) (*models.TeamApplication, error) {
	kind := models.ApplicationKind(input.Kind)
	if input.Kind == "" {
		kind = models.KindApplication
	}
	if !kind.Valid() {
		return nil, ErrInvalidApplicationKind
	}

	teamName := strings.TrimSpace(input.TeamName)
	if teamName == "" || input.TournamentID == 0 {
		return nil, ErrValidationFailed
	}

	roster := make([]models.ApplicationRosterEntry, 0, len(input.Roster))
	for _, entry := range input.Roster {
		entry.Nickname = strings.TrimSpace(entry.Nickname)
		if entry.Nickname == "" {
			return nil, ErrRosterEntryInvalid
		}
		roster = append(roster, entry)
	}

	app := &models.TeamApplication{
		Kind:         kind,
		UserID:       userID,
		TournamentID: input.TournamentID,
		TeamName:     teamName,
		Country:      strings.TrimSpace(input.Country),
		LogoURL:      input.LogoURL,
		Roster:       roster,
		Status:       models.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrApplicationInvalidRef) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *moderationService) ListOwn(ctx context.Context, userID int) ([]models.TeamApplication, error) {
	return s.applicationRepo.ListByUser(ctx, userID)
}

func (s *moderationService) ListPending(ctx context.Context) ([]models.TeamApplication, error) {
	return s.applicationRepo.ListPending(ctx)
}

func (s *moderationService) Decide(ctx context.Context, id int, input DecisionInput) (*models.TeamApplication, error) {
	status := models.ApplicationRejected
	if input.Approve {
		status = models.ApplicationApproved
	}

	err := s.applicationRepo.Decide(ctx, id, status, input.AdminComment, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrApplicationNotFound):
			return nil, ErrApplicationNotFound
		case errors.Is(err, repositories.ErrApplicationAlreadyDecided):
			return nil, ErrApplicationDecided
		}
		return nil, err
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}
