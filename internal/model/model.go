package model

import (
	"strings"
	"time"
)

// Meeting lifecycle states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Known site codes for the location field.
const (
	LocationSG  = "SG"
	LocationMUM = "MUM"
)

// Participant is one contact slot on a meeting. All fields are optional;
// a slot without an email simply receives no notifications.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (p Participant) Empty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == ""
}

type Meeting struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Date            time.Time   `json:"date"`
	Time            string      `json:"time"`
	Venue           string      `json:"venue"`
	Country         string      `json:"country"`
	Location        string      `json:"location"` // SG, MUM or empty
	CompanyA        Participant `json:"companyA"`
	CompanyB        Participant `json:"companyB"`
	Broker1         Participant `json:"broker1"`
	Broker2         Participant `json:"broker2"`
	ClientContact   Participant `json:"clientContact"`
	StatusCompanyA  string      `json:"statusCompanyA"`
	StatusCompanyB  string      `json:"statusCompanyB"`
	Status          string      `json:"status"`
	InvitationsSent bool        `json:"invitationsSent"`
	CreatedBy       string      `json:"createdBy"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Normalize canonicalizes contact fields for storage: names and phones
// trimmed, emails trimmed and lowercased so they compare by equality.
func (m *Meeting) Normalize() {
	for _, p := range []*Participant{&m.CompanyA, &m.CompanyB, &m.Broker1, &m.Broker2, &m.ClientContact} {
		p.Name = strings.TrimSpace(p.Name)
		p.Email = strings.ToLower(strings.TrimSpace(p.Email))
		p.Phone = strings.TrimSpace(p.Phone)
	}
}

// ValidLocation reports whether loc is one of the two site codes or empty.
func ValidLocation(loc string) bool {
	return loc == "" || loc == LocationSG || loc == LocationMUM
}

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User.Password holds either a bcrypt hash or a legacy plain-text
// credential; auth.IsHashed tells them apart.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MeetingStats is the aggregate returned by GET /api/meetings/stats.
type MeetingStats struct {
	TotalMeetings     int `json:"totalMeetings"`
	UpcomingMeetings  int `json:"upcomingMeetings"`
	CompletedMeetings int `json:"completedMeetings"`
}

// ImportError is one failed row of a bulk upload. Row is the 1-based
// position in the file counting the header line.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportReport aggregates the outcome of one bulk upload.
// Errors is omitted entirely when every row succeeded.
type ImportReport struct {
	Message      string        `json:"message"`
	TotalRows    int           `json:"totalRows"`
	SuccessCount int           `json:"successCount"`
	FailedCount  int           `json:"failedCount"`
	Errors       []ImportError `json:"errors,omitempty"`
}
