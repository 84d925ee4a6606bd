package handler

import (
	"context"
	"log/slog"

	"meeting-scheduler-api/internal/model"
)

// Store is what the handlers need from the record store; *store.Store
// satisfies it, and the tests run against an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	EnsureHashedPassword(ctx context.Context, userID, password string) error

	CreateMeeting(ctx context.Context, m *model.Meeting) error
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*model.Meeting, error)
	UpdateMeeting(ctx context.Context, m *model.Meeting) error
	DeleteMeeting(ctx context.Context, id string) error
	SetInvitationsSent(ctx context.Context, id string, sent bool) error
	MeetingStats(ctx context.Context) (*model.MeetingStats, error)
}

// Mailer is the notification collaborator.
type Mailer interface {
	SendMeetingInvitation(ctx context.Context, m *model.Meeting) error
	SendPartyJoinedNotification(ctx context.Context, m *model.Meeting, joined model.Participant) error
}

type Handler struct {
	store      Store
	mailer     Mailer
	secret     string
	production bool
	log        *slog.Logger
}

func New(st Store, ml Mailer, secret string, production bool, log *slog.Logger) *Handler {
	return &Handler{store: st, mailer: ml, secret: secret, production: production, log: log}
}
