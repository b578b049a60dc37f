package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-db/models"
)

var ErrProfileNotFound = errors.New("user profile not found")

type ProfileRepository interface {
	// GetOrCreate создаёт пустой профиль при первом обращении.
	GetOrCreate(ctx context.Context, userID int) (*models.UserProfile, error)
	Update(ctx context.Context, userID int, bio *string, avatarURL *string) (*models.UserProfile, error)
	UpdateAvatarURL(ctx context.Context, userID int, avatarURL *string) error
}

type postgresProfileRepository struct {
	db *sql.DB
}

func NewPostgresProfileRepository(db *sql.DB) ProfileRepository {
	return &postgresProfileRepository{db: db}
}

func (r *postgresProfileRepository) GetOrCreate(ctx context.Context, userID int) (*models.UserProfile, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, err
	}
	return r.get(ctx, userID)
}

// Update обновляет только переданные поля; nil означает "не трогать".
func (r *postgresProfileRepository) Update(ctx context.Context, userID int, bio *string, avatarURL *string) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles SET
			bio = COALESCE($1, bio),
			avatar_url = CASE WHEN $2::text IS NULL THEN avatar_url ELSE $2 END
		WHERE user_id = $3`

	result, err := r.db.ExecContext(ctx, query, bio, avatarURL, userID)
	if err != nil {
		return nil, err
	}
	if err := checkAffectedRows(result, ErrProfileNotFound); err != nil {
		return nil, err
	}
	return r.get(ctx, userID)
}

func (r *postgresProfileRepository) UpdateAvatarURL(ctx context.Context, userID int, avatarURL *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE user_profiles SET avatar_url = $1 WHERE user_id = $2`, avatarURL, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrProfileNotFound)
}

func (r *postgresProfileRepository) get(ctx context.Context, userID int) (*models.UserProfile, error) {
	query := `
		SELECT p.user_id, u.username, u.email, u.is_staff, p.bio, p.avatar_url
		FROM user_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	profile := &models.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &profile.Username, &profile.Email, &profile.IsStaff,
		&profile.Bio, &profile.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
