package store

import (
	"context"

	"meeting-scheduler-api/internal/model"
)

const meetingColumns = `id, title, description, date, time, venue, country, location,
	company_a_name, company_a_email, company_a_phone,
	company_b_name, company_b_email, company_b_phone,
	broker1_name, broker1_email, broker1_phone,
	broker2_name, broker2_email, broker2_phone,
	client_contact_name, client_contact_email, client_contact_phone,
	status_company_a, status_company_b, status, invitations_sent, created_by,
	created_at, updated_at`

func (s *Store) CreateMeeting(ctx context.Context, m *model.Meeting) error {
	if m.Status == "" {
		m.Status = model.StatusScheduled
	}
	m.Normalize()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO meetings (id, title, description, date, time, venue, country, location,
			company_a_name, company_a_email, company_a_phone,
			company_b_name, company_b_email, company_b_phone,
			broker1_name, broker1_email, broker1_phone,
			broker2_name, broker2_email, broker2_phone,
			client_contact_name, client_contact_email, client_contact_phone,
			status_company_a, status_company_b, status, invitations_sent, created_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28)`,
		m.ID, m.Title, m.Description, m.Date, m.Time, m.Venue, m.Country, m.Location,
		m.CompanyA.Name, m.CompanyA.Email, m.CompanyA.Phone,
		m.CompanyB.Name, m.CompanyB.Email, m.CompanyB.Phone,
		m.Broker1.Name, m.Broker1.Email, m.Broker1.Phone,
		m.Broker2.Name, m.Broker2.Email, m.Broker2.Phone,
		m.ClientContact.Name, m.ClientContact.Email, m.ClientContact.Phone,
		m.StatusCompanyA, m.StatusCompanyB, m.Status, m.InvitationsSent, m.CreatedBy,
	)
	return err
}

func scanMeeting(row interface{ Scan(dest ...any) error }) (*model.Meeting, error) {
	m := &model.Meeting{}
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Date, &m.Time, &m.Venue, &m.Country, &m.Location,
		&m.CompanyA.Name, &m.CompanyA.Email, &m.CompanyA.Phone,
		&m.CompanyB.Name, &m.CompanyB.Email, &m.CompanyB.Phone,
		&m.Broker1.Name, &m.Broker1.Email, &m.Broker1.Phone,
		&m.Broker2.Name, &m.Broker2.Email, &m.Broker2.Phone,
		&m.ClientContact.Name, &m.ClientContact.Email, &m.ClientContact.Phone,
		&m.StatusCompanyA, &m.StatusCompanyB, &m.Status, &m.InvitationsSent, &m.CreatedBy,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMeetings returns every meeting, most recent date first, then time.
func (s *Store) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings ORDER BY date DESC, time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (s *Store) GetMeeting(ctx context.Context, id string) (*model.Meeting, error) {
	return scanMeeting(s.pool.QueryRow(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE id = $1`, id))
}

func (s *Store) UpdateMeeting(ctx context.Context, m *model.Meeting) error {
	m.Normalize()
	_, err := s.pool.Exec(ctx,
		`UPDATE meetings SET title=$1, description=$2, date=$3, time=$4, venue=$5,
			country=$6, location=$7,
			company_a_name=$8, company_a_email=$9, company_a_phone=$10,
			company_b_name=$11, company_b_email=$12, company_b_phone=$13,
			broker1_name=$14, broker1_email=$15, broker1_phone=$16,
			broker2_name=$17, broker2_email=$18, broker2_phone=$19,
			client_contact_name=$20, client_contact_email=$21, client_contact_phone=$22,
			status_company_a=$23, status_company_b=$24, status=$25,
			invitations_sent=$26, updated_at=NOW()
		 WHERE id=$27`,
		m.Title, m.Description, m.Date, m.Time, m.Venue, m.Country, m.Location,
		m.CompanyA.Name, m.CompanyA.Email, m.CompanyA.Phone,
		m.CompanyB.Name, m.CompanyB.Email, m.CompanyB.Phone,
		m.Broker1.Name, m.Broker1.Email, m.Broker1.Phone,
		m.Broker2.Name, m.Broker2.Email, m.Broker2.Phone,
		m.ClientContact.Name, m.ClientContact.Email, m.ClientContact.Phone,
		m.StatusCompanyA, m.StatusCompanyB, m.Status, m.InvitationsSent, m.ID,
	)
	return err
}

func (s *Store) DeleteMeeting(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	return err
}

// SetInvitationsSent flips the dispatch flag after a successful send.
func (s *Store) SetInvitationsSent(ctx context.Context, id string, sent bool) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE meetings SET invitations_sent = $1, updated_at = NOW() WHERE id = $2`,
		sent, id,
	)
	return err
}

func (s *Store) MeetingStats(ctx context.Context) (*model.MeetingStats, error) {
	st := &model.MeetingStats{}
	err := s.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE date >= NOW() AND status = 'scheduled'),
		        count(*) FILTER (WHERE status = 'completed')
		 FROM meetings`,
	).Scan(&st.TotalMeetings, &st.UpcomingMeetings, &st.CompletedMeetings)
	if err != nil {
		return nil, err
	}
	return st, nil
}
