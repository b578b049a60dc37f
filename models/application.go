package models

import "time"

// ApplicationKind различает два исторических вида заявок, ведущих себя
// одинаково: "application" и "registration_request".
type ApplicationKind string

const (
	KindApplication         ApplicationKind = "application"
	KindRegistrationRequest ApplicationKind = "registration_request"
)

func (k ApplicationKind) Valid() bool {
	return k == KindApplication || k == KindRegistrationRequest
}

// ApplicationStatus — статусы заявки. pending — начальный; approved и
// rejected — терминальные, повторное решение невозможно.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ApplicationRosterEntry — игрок в составе, заявленном на регистрацию.
type ApplicationRosterEntry struct {
	Nickname string  `json:"nickname"`
	RealName *string `json:"real_name"`
	Role     string  `json:"role"`
}

// TeamApplication — заявка пользователя на регистрацию команды в турнире.
type TeamApplication struct {
	ID           int                      `json:"id"`
	Kind         ApplicationKind          `json:"kind"`
	UserID       int                      `json:"user"`
	TournamentID int                      `json:"tournament"`
	TeamName     string                   `json:"team_name"`
	Country      string                   `json:"country"`
	LogoURL      *string                  `json:"logo_url"`
	Roster       []ApplicationRosterEntry `json:"roster"`
	Status       ApplicationStatus        `json:"status"`
	AdminComment *string                  `json:"admin_comment"`
	CreatedAt    time.Time                `json:"created_at"`
	DecidedAt    *time.Time               `json:"decided_at"`
}
