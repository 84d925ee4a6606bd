package mailer

import (
	"html/template"
	"strings"

	"meeting-scheduler-api/internal/model"
)

var invitationTmpl = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Meeting Invitation</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f3f4f6;">
  <table width="600" cellpadding="0" cellspacing="0" align="center" style="background:white;border-radius:16px;overflow:hidden;">
    <tr>
      <td style="background:linear-gradient(135deg,#4f46e5 0%,#7c3aed 100%);padding:40px;text-align:center;">
        <h1 style="color:white;margin:0;font-size:28px;">Meeting Invitation</h1>
      </td>
    </tr>
    <tr>
      <td style="padding:40px;">
        <h2 style="color:#1f2937;margin:0 0 20px 0;">{{.Meeting.Title}}</h2>
        {{if .Meeting.Description}}<p style="color:#6b7280;font-size:16px;">{{.Meeting.Description}}</p>{{end}}
        <div style="background:#f9fafb;border-left:4px solid #4f46e5;padding:25px;border-radius:8px;margin-bottom:30px;">
          <table width="100%" cellpadding="8" cellspacing="0">
            <tr><td style="color:#4b5563;font-weight:600;width:120px;">Date:</td><td style="color:#1f2937;">{{.DateDisplay}}</td></tr>
            <tr><td style="color:#4b5563;font-weight:600;">Time:</td><td style="color:#1f2937;">{{.Meeting.Time}}</td></tr>
            <tr><td style="color:#4b5563;font-weight:600;">Venue:</td><td style="color:#1f2937;">{{.Meeting.Venue}}</td></tr>
            {{if .Meeting.Country}}<tr><td style="color:#4b5563;font-weight:600;">Country:</td><td style="color:#1f2937;">{{.Meeting.Country}}</td></tr>{{end}}
            {{if .Meeting.Location}}<tr><td style="color:#4b5563;font-weight:600;">Location Code:</td><td style="color:#1f2937;">{{.Meeting.Location}}</td></tr>{{end}}
            <tr><td style="color:#4b5563;font-weight:600;">Directions:</td><td style="color:#1f2937;">Please plan to arrive 10 minutes early to account for security and check-in formalities.</td></tr>
          </table>
        </div>
        <h3 style="color:#1f2937;font-size:18px;">Meeting Contacts</h3>
        <table width="100%" cellpadding="8" cellspacing="0" style="border:1px solid #e5e7eb;border-radius:8px;">
          {{range .Contacts}}
          <tr>
            <td style="padding:12px;font-weight:600;color:#4b5563;width:140px;">{{.Label}}:</td>
            <td style="padding:12px;color:#1f2937;">
              {{if .Name}}<div style="font-weight:600;">{{.Name}}</div>{{end}}
              {{if .Email}}<div><a href="mailto:{{.Email}}" style="color:#4f46e5;">{{.Email}}</a></div>{{end}}
              {{if .Phone}}<div style="color:#4b5563;font-size:13px;">{{.Phone}}</div>{{end}}
            </td>
          </tr>
          {{else}}
          <tr><td colspan="2" style="padding:16px;color:#6b7280;text-align:center;">Contact details will be shared closer to the meeting date.</td></tr>
          {{end}}
        </table>
        <div style="background:#fef3c7;border:1px solid #fbbf24;border-radius:8px;padding:20px;margin-top:30px;">
          <p style="margin:0;color:#92400e;font-size:14px;"><strong>Important:</strong> This is an <strong>offline meeting</strong>. Please bring a valid ID for building access and arrive at the venue on time.</p>
        </div>
        {{if .ShowPromotion}}
        <div style="margin-top:40px;padding:30px;background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);border-radius:12px;text-align:center;">
          <h3 style="color:white;margin-bottom:20px;">Quick Vital Scan Before Your Meeting!</h3>
          <img src="cid:promotion-poster-image" alt="Promotion Poster" style="max-width:100%;border-radius:12px;" />
        </div>
        {{end}}
      </td>
    </tr>
    <tr>
      <td style="background:#f9fafb;padding:30px;text-align:center;border-top:1px solid #e5e7eb;">
        <p style="color:#6b7280;font-size:14px;margin:0;">This is an automated invitation from Meeting Scheduler</p>
      </td>
    </tr>
  </table>
</body>
</html>`))

var partyJoinedTmpl = template.Must(template.New("partyJoined").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Party Joined Notification</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f3f4f6;">
  <table width="600" cellpadding="0" cellspacing="0" align="center" style="background:white;border-radius:16px;overflow:hidden;">
    <tr>
      <td style="background:linear-gradient(135deg,#10b981 0%,#059669 100%);padding:40px;text-align:center;">
        <h1 style="color:white;margin:0;font-size:28px;">Party Joined Notification</h1>
      </td>
    </tr>
    <tr>
      <td style="padding:40px;">
        <div style="background:#d1fae5;border-left:4px solid #10b981;padding:20px;border-radius:8px;margin-bottom:30px;">
          <p style="color:#065f46;font-size:18px;font-weight:600;margin:0;">{{.Joined.Name}} has joined the meeting!</p>
        </div>
        <h2 style="color:#1f2937;margin:0 0 20px 0;">{{.Meeting.Title}}</h2>
        <table width="100%" cellpadding="8" cellspacing="0">
          <tr><td style="color:#4b5563;font-weight:600;width:120px;">Date:</td><td style="color:#1f2937;">{{.DateDisplay}}</td></tr>
          <tr><td style="color:#4b5563;font-weight:600;">Time:</td><td style="color:#1f2937;">{{.Meeting.Time}}</td></tr>
          <tr><td style="color:#4b5563;font-weight:600;">Venue:</td><td style="color:#1f2937;">{{.Meeting.Venue}}</td></tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

type contactRow struct {
	Label, Name, Email, Phone string
}

func contactRows(m *model.Meeting) []contactRow {
	slots := []struct {
		label string
		p     model.Participant
	}{
		{"Company A", m.CompanyA},
		{"Company B", m.CompanyB},
		{"1st Broker", m.Broker1},
		{"2nd Broker", m.Broker2},
		{"Client Contact", m.ClientContact},
	}
	var out []contactRow
	for _, s := range slots {
		if s.p.Empty() {
			continue
		}
		out = append(out, contactRow{s.label, s.p.Name, s.p.Email, s.p.Phone})
	}
	return out
}

func dateDisplay(m *model.Meeting) string {
	return m.Date.Format("Monday, 2 January 2006")
}

func renderInvitation(m *model.Meeting, showPromotion bool) (string, error) {
	var b strings.Builder
	err := invitationTmpl.Execute(&b, struct {
		Meeting       *model.Meeting
		DateDisplay   string
		Contacts      []contactRow
		ShowPromotion bool
	}{m, dateDisplay(m), contactRows(m), showPromotion})
	return b.String(), err
}

func renderPartyJoined(m *model.Meeting, joined model.Participant) (string, error) {
	var b strings.Builder
	err := partyJoinedTmpl.Execute(&b, struct {
		Meeting     *model.Meeting
		Joined      model.Participant
		DateDisplay string
	}{m, joined, dateDisplay(m)})
	return b.String(), err
}
