package notify

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DefenseService/internal/integrations/mailer"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// buildBookingMessages собирает письма подтверждения: по одному каждому
// читателю и одно студенту
func buildBookingMessages(n BookingNotification) []mailer.Message {
	niceDate := formatDisplayDate(n)
	niceTime := formatDisplayTime(n.Time)
	readerNames := make([]string, 0, len(n.Professors))
	for _, p := range n.Professors {
		readerNames = append(readerNames, p.Name)
	}

	messages := make([]mailer.Message, 0, len(n.Professors)+1)

	for _, prof := range n.Professors {
		others := make([]string, 0, len(n.Professors)-1)
		for _, other := range n.Professors {
			if other.Email != prof.Email {
				others = append(others, other.Name)
			}
		}

		messages = append(messages, mailer.Message{
			To:      prof.Email,
			Subject: fmt.Sprintf("Oral Defense: %s — %s", n.StudentName, niceDate),
			HTML: professorTemplate(prof.Name, n.StudentName, niceDate, niceTime,
				n.RoomName, strings.Join(others, ", ")),
		})
	}

	messages = append(messages, mailer.Message{
		To:      n.StudentEmail,
		Subject: "Your Oral Defense is Confirmed",
		HTML: studentTemplate(n.StudentName, niceDate, niceTime, n.RoomName,
			strings.Join(readerNames, ", ")),
	})

	return messages
}

// formatDisplayTime переводит "09:00:00" в "9:00 AM"
func formatDisplayTime(t types.TimeString) string {
	parts := strings.Split(t.String(), ":")
	if len(parts) < 2 {
		return t.String()
	}

	var hour int
	fmt.Sscanf(parts[0], "%d", &hour)

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], ampm)
}

// formatDisplayDate переводит дату в "March 15, 2026"
func formatDisplayDate(n BookingNotification) string {
	return n.Date.Format("January 2, 2006")
}

func studentTemplate(studentName, date, tm, room, readers string) string {
	rows := detailRows([][2]string{
		{"Date", date},
		{"Time", tm},
		{"Room", room},
		{"Readers", readers},
	})
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2>Defense Confirmed</h2>
  <p>Hi %s,</p>
  <p>Your oral defense has been scheduled. Here are the details:</p>
  <table style="width: 100%%; border-collapse: collapse;">%s</table>
  <p style="color: #666; font-size: 13px;">If you need to reschedule, please contact the department administrator.</p>
</div>`, studentName, rows)
}

func professorTemplate(profName, studentName, date, tm, room, otherReader string) string {
	rows := detailRows([][2]string{
		{"Student", studentName},
		{"Date", date},
		{"Time", tm},
		{"Room", room},
		{"Other Reader", otherReader},
	})
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2>New Defense Scheduled</h2>
  <p>Hi %s,</p>
  <p>You have been assigned as a reader for the following oral defense:</p>
  <table style="width: 100%%; border-collapse: collapse;">%s</table>
</div>`, profName, rows)
}

func detailRows(pairs [][2]string) string {
	var b strings.Builder
	for _, pair := range pairs {
		fmt.Fprintf(&b,
			`<tr><td style="padding: 8px; border: 1px solid #e5e5e5; font-weight: 600;">%s</td><td style="padding: 8px; border: 1px solid #e5e5e5;">%s</td></tr>`,
			pair[0], pair[1])
	}
	return b.String()
}
