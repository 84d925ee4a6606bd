package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler-api/internal/model"
)

// Column labels of the upload format. Header-driven, so ordering in the
// file is irrelevant.
const (
	colCompanyA      = "CEDANT / COMPANY A"
	colCompanyB      = "REINSURER / COMPANY B"
	colBroker1       = "1st Broker"
	colBroker2       = "2nd Broker"
	colClientContact = "CLIENT's CONTACT"
	colTime          = "TIME"
	colVenue         = "VENUE"
	colCountry       = "country"
	colLocation      = "SG/MUM"
	colStatusA       = "STATUS (Company A)"
	colStatusB       = "STATUS (Company B)"
)

func participant(row map[string]string, label string) model.Participant {
	return model.Participant{
		Name:  row[label],
		Email: row[label+" Email"],
		Phone: row[label+" Phone"],
	}
}

// MapRow turns one flat CSV row into a meeting payload. Best-effort: absent
// columns become empty strings and blanks fall back to defaults, so mapping
// itself never fails. The upload format carries no date column; the
// processing time stands in.
func MapRow(row map[string]string, createdBy string, now time.Time) *model.Meeting {
	companyA := participant(row, colCompanyA)
	companyB := participant(row, colCompanyB)

	timeOfDay := row[colTime]
	if timeOfDay == "" {
		timeOfDay = "10:00 AM"
	}
	venue := row[colVenue]
	if venue == "" {
		venue = "TBD"
	}

	return &model.Meeting{
		ID:             uuid.New().String(),
		Title:          fmt.Sprintf("Meeting: %s - %s", companyA.Name, companyB.Name),
		Description:    fmt.Sprintf("Meeting between %s and %s", companyA.Name, companyB.Name),
		Date:           now,
		Time:           timeOfDay,
		Venue:          venue,
		Country:        row[colCountry],
		Location:       row[colLocation],
		CompanyA:       companyA,
		CompanyB:       companyB,
		Broker1:        participant(row, colBroker1),
		Broker2:        participant(row, colBroker2),
		ClientContact:  participant(row, colClientContact),
		StatusCompanyA: row[colStatusA],
		StatusCompanyB: row[colStatusB],
		Status:         model.StatusScheduled,
		CreatedBy:      createdBy,
	}
}
