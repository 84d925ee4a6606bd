package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wneessen/go-mail"
	"golang.org/x/sync/errgroup"

	"meeting-scheduler-api/internal/config"
	"meeting-scheduler-api/internal/model"
)

var ErrNotConfigured = errors.New("mail transport not configured")

const posterContentID = "promotion-poster-image"

// Transport is the sending primitive; satisfied by *mail.Client and by
// test fakes.
type Transport interface {
	DialAndSendWithContext(ctx context.Context, msgs ...*mail.Msg) error
}

// Mailer renders and dispatches meeting emails. Construction takes the
// full SMTP configuration; there is no package-level mail state.
type Mailer struct {
	cfg       config.SMTP
	transport Transport
	log       *slog.Logger
}

func New(cfg config.SMTP, log *slog.Logger) (*Mailer, error) {
	m := &Mailer{cfg: cfg, log: log}
	if !cfg.Configured() {
		return m, nil
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Secure {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	m.transport = client
	return m, nil
}

// NewWithTransport builds a Mailer around a caller-supplied transport.
func NewWithTransport(cfg config.SMTP, tp Transport, log *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, transport: tp, log: log}
}

// Recipients returns every participant that carries an email address,
// skipping excludeEmail when non-empty. The exclusion compare is
// case-insensitive so rows stored before email normalization still
// match.
func Recipients(m *model.Meeting, excludeEmail string) []model.Participant {
	var out []model.Participant
	for _, p := range []model.Participant{m.CompanyA, m.CompanyB, m.Broker1, m.Broker2, m.ClientContact} {
		if p.Email == "" || (excludeEmail != "" && strings.EqualFold(p.Email, excludeEmail)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SendMeetingInvitation emails every participant of m. All sends run
// concurrently and are awaited jointly; any transport failure fails the
// whole dispatch. Zero recipients is a successful no-op.
func (ml *Mailer) SendMeetingInvitation(ctx context.Context, m *model.Meeting) error {
	recipients := Recipients(m, "")
	if len(recipients) == 0 {
		return nil
	}

	poster := ml.posterPath()
	html, err := renderInvitation(m, poster != "")
	if err != nil {
		return err
	}

	subject := "Meeting Invitation: " + m.Title
	if err := ml.dispatch(ctx, recipients, subject, html, poster); err != nil {
		return err
	}

	ml.log.Info("invitations sent", "meeting", m.Title, "recipients", len(recipients))
	return nil
}

// SendPartyJoinedNotification tells every other participant that joined
// has confirmed attendance.
func (ml *Mailer) SendPartyJoinedNotification(ctx context.Context, m *model.Meeting, joined model.Participant) error {
	recipients := Recipients(m, joined.Email)
	if len(recipients) == 0 {
		return nil
	}

	html, err := renderPartyJoined(m, joined)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s has joined: %s", joined.Name, m.Title)
	if err := ml.dispatch(ctx, recipients, subject, html, ""); err != nil {
		return err
	}

	ml.log.Info("party joined notifications sent", "meeting", m.Title, "recipients", len(recipients))
	return nil
}

func (ml *Mailer) dispatch(ctx context.Context, recipients []model.Participant, subject, html, poster string) error {
	if ml.transport == nil {
		return ErrNotConfigured
	}

	// Compose everything up front so a bad address aborts the dispatch
	// before any goroutine is launched.
	msgs := make([]*mail.Msg, 0, len(recipients))
	for _, r := range recipients {
		msg, err := ml.compose(r, subject, html, poster)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, msg := range msgs {
		msg := msg
		g.Go(func() error {
			return ml.transport.DialAndSendWithContext(ctx, msg)
		})
	}
	return g.Wait()
}

func (ml *Mailer) compose(to model.Participant, subject, html, poster string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(ml.cfg.FromName, ml.cfg.FromAddress); err != nil {
		return nil, err
	}
	if err := msg.AddToFormat(to.Name, to.Email); err != nil {
		return nil, err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)
	if poster != "" {
		// EmbedFile defers file problems to send time in this client
		// version; posterPath has already checked the file exists.
		msg.EmbedFile(poster, mail.WithFileContentID(posterContentID))
	}
	return msg, nil
}

// posterPath returns the promotion poster location, or "" when none is
// configured or the file is missing.
func (ml *Mailer) posterPath() string {
	if ml.cfg.PosterPath == "" {
		return ""
	}
	if _, err := os.Stat(ml.cfg.PosterPath); err != nil {
		return ""
	}
	return ml.cfg.PosterPath
}
