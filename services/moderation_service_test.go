package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicationRepo struct {
	apps   map[int]*models.TeamApplication
	nextID int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[int]*models.TeamApplication), nextID: 1}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *models.TeamApplication) error {
	app.ID = f.nextID
	app.CreatedAt = time.Now()
	f.nextID++
	stored := *app
	f.apps[app.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id int) (*models.TeamApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID int) ([]models.TeamApplication, error) {
	out := make([]models.TeamApplication, 0)
	for _, app := range f.apps {
		if app.UserID == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListPending(_ context.Context) ([]models.TeamApplication, error) {
	out := make([]models.TeamApplication, 0)
	for _, app := range f.apps {
		if app.Status == models.ApplicationPending {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Decide(_ context.Context, id int, status models.ApplicationStatus, comment *string, decidedAt time.Time) error {
	app, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	if app.Status != models.ApplicationPending {
		return repositories.ErrApplicationAlreadyDecided
	}
	app.Status = status
	app.AdminComment = comment
	app.DecidedAt = &decidedAt
	return nil
}

func (f *fakeApplicationRepo) CountPending(_ context.Context) (int, error) {
	pending, _ := f.ListPending(context.Background())
	return len(pending), nil
}

func TestSubmitApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := NewModerationService(repo)

	t.Run("defaults kind", func(t *testing.T) {
		app, err := svc.Submit(context.Background(), 1, ApplicationInput{
			TournamentID: 2,
			TeamName:     "Alpha",
			Country:      "KZ",
			Roster: []models.ApplicationRosterEntry{
				{Nickname: "neo", Role: "captain"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, models.KindApplication, app.Kind)
		assert.Equal(t, models.ApplicationPending, app.Status)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), 1, ApplicationInput{
			Kind:         "petition",
			TournamentID: 2,
			TeamName:     "Alpha",
		})
		assert.ErrorIs(t, err, ErrInvalidApplicationKind)
	})

	t.Run("empty team name", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), 1, ApplicationInput{
			TournamentID: 2,
			TeamName:     "   ",
		})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("roster entry without nickname", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), 1, ApplicationInput{
			TournamentID: 2,
			TeamName:     "Alpha",
			Roster:       []models.ApplicationRosterEntry{{Nickname: "  "}},
		})
		assert.ErrorIs(t, err, ErrRosterEntryInvalid)
	})
}

// Решение терминально: повторная попытка по той же заявке отклоняется.
func TestDecideIsTerminal(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := NewModerationService(repo)

	app, err := svc.Submit(context.Background(), 1, ApplicationInput{
		Kind:         string(models.KindRegistrationRequest),
		TournamentID: 2,
		TeamName:     "Alpha",
	})
	require.NoError(t, err)

	comment := "добро"
	decided, err := svc.Decide(context.Background(), app.ID, DecisionInput{Approve: true, AdminComment: &comment})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)
	require.NotNil(t, decided.AdminComment)
	assert.Equal(t, comment, *decided.AdminComment)

	_, err = svc.Decide(context.Background(), app.ID, DecisionInput{Approve: false})
	assert.ErrorIs(t, err, ErrApplicationDecided)
}

func TestDecideUnknownApplication(t *testing.T) {
	svc := NewModerationService(newFakeApplicationRepo())

	_, err := svc.Decide(context.Background(), 99, DecisionInput{Approve: true})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
