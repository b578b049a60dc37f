package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed       = errors.New("validation failed")
	ErrUsernameRequired       = errors.New("username is required")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters long")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrUserInactive           = errors.New("user account is disabled")
	ErrTournamentIDRequired   = errors.New("tournament_id is required")
	ErrInvalidItemType        = errors.New("invalid view history item type")
	ErrInvalidApplicationKind = errors.New("invalid application kind")
	ErrRosterEntryInvalid     = errors.New("roster entry requires a nickname")

	// Конфликты уникальности. Наружу отдаются как ошибки валидации (400),
	// сохраняя контракт исходного API.
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrGameTitleConflict      = errors.New("game title is already in use")
	ErrTeamNameConflict       = errors.New("team name is already in use")
	ErrPlayerNicknameConflict = errors.New("player nickname is already in use")
	ErrDuplicateFavorite      = errors.New("favorite already exists")
	ErrDuplicateStanding      = errors.New("standing already exists for this tournament and team")
	ErrDuplicateRegistration  = errors.New("team is already registered for this tournament")

	// Ошибки аутентификации и авторизации
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrGameNotFound        = errors.New("game not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrStandingNotFound    = errors.New("standing not found")
	ErrApplicationNotFound = errors.New("team application not found")

	// Ошибки турниров и матчей
	ErrTournamentInvalidDateRange = errors.New("tournament end date must not be before start date")
	ErrTournamentInvalidStatus    = errors.New("invalid tournament status provided")
	ErrTournamentInvalidFormat    = errors.New("invalid tournament format provided")
	ErrMatchInvalidStatus         = errors.New("invalid match status provided")
	ErrMatchSameTeams             = errors.New("match teams must be different")

	// Модерация
	ErrApplicationDecided = errors.New("team application is already decided")

	// Загрузка файлов
	ErrUploaderNotConfigured = errors.New("file storage is not configured")
)
