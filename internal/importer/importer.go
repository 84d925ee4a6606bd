package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meeting-scheduler-api/internal/model"
)

const missingFieldsReason = "Missing required fields (Company A, Company B, or Venue)"

// MeetingStore is the slice of the record store the importer needs.
type MeetingStore interface {
	CreateMeeting(ctx context.Context, m *model.Meeting) error
	SetInvitationsSent(ctx context.Context, id string, sent bool) error
}

// InvitationSender dispatches the invitation batch for one meeting.
type InvitationSender interface {
	SendMeetingInvitation(ctx context.Context, m *model.Meeting) error
}

// Importer runs one bulk upload. Single-use: it holds no state beyond the
// report it accumulates.
type Importer struct {
	store   MeetingStore
	invites InvitationSender
	log     *slog.Logger
}

func New(store MeetingStore, invites InvitationSender, log *slog.Logger) *Importer {
	return &Importer{store: store, invites: invites, log: log}
}

// Run folds over the parsed data rows in file order. Each row is mapped,
// validated, persisted and notified independently; a row failure never
// aborts the batch. Reported row ordinals are the 1-based data-row position
// plus the header line (i + 2).
func (imp *Importer) Run(ctx context.Context, rows []map[string]string, createdBy string) *model.ImportReport {
	report := &model.ImportReport{TotalRows: len(rows)}

	for i, row := range rows {
		rowNum := i + 2 // header line + zero-based index

		m := MapRow(row, createdBy, time.Now())

		if m.CompanyA.Name == "" || m.CompanyB.Name == "" || m.Venue == "" {
			report.FailedCount++
			report.Errors = append(report.Errors, model.ImportError{Row: rowNum, Error: missingFieldsReason})
			continue
		}

		if err := imp.store.CreateMeeting(ctx, m); err != nil {
			imp.log.Error("bulk upload row failed", "row", rowNum, "error", err)
			report.FailedCount++
			report.Errors = append(report.Errors, model.ImportError{Row: rowNum, Error: err.Error()})
			continue
		}

		// best-effort notify: a failed dispatch does not undo the row
		if err := imp.invites.SendMeetingInvitation(ctx, m); err != nil {
			imp.log.Error("invitation dispatch failed", "row", rowNum, "meeting", m.ID, "error", err)
		} else if err := imp.store.SetInvitationsSent(ctx, m.ID, true); err != nil {
			imp.log.Error("invitations_sent update failed", "row", rowNum, "meeting", m.ID, "error", err)
		}

		report.SuccessCount++
	}

	report.Message = fmt.Sprintf("Bulk upload completed. %d meetings created, %d failed",
		report.SuccessCount, report.FailedCount)
	return report
}
