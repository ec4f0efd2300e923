// internal/email/mailer/meeting.go
package mailer

import (
	"fmt"

	"github.com/campusclubs/epsilon/internal/email"
	"github.com/campusclubs/epsilon/internal/model"
)

const fromName = "Epsilon"

// MeetingNotice carries the rendered fields for scheduled/updated/canceled
// meeting emails.
type MeetingNotice struct {
	To          string
	Kind        model.NotificationKind
	OrgName     string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	RoomName    string
	Advisor     *string
}

type meetingTemplateData struct {
	OrgName     string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	RoomName    string
	Advisor     string
}

// SendMeetingNotice sends the meeting lifecycle email matching notice.Kind.
func SendMeetingNotice(s *email.Service, notice MeetingNotice) error {
	var templateName, verb string
	switch notice.Kind {
	case model.NotifyMeetingScheduled:
		templateName, verb = "meeting_scheduled", "scheduled"
	case model.NotifyMeetingUpdated:
		templateName, verb = "meeting_updated", "updated"
	case model.NotifyMeetingCanceled:
		templateName, verb = "meeting_canceled", "canceled"
	default:
		return fmt.Errorf("unsupported meeting notice kind: %s", notice.Kind)
	}

	advisor := "None"
	if notice.Advisor != nil {
		advisor = *notice.Advisor
	}

	return s.SendEmail(email.EmailData{
		To:           notice.To,
		FromName:     fromName,
		Subject:      fmt.Sprintf("%s %s a meeting | Epsilon", notice.OrgName, verb),
		TemplateName: templateName,
		TemplateData: meetingTemplateData{
			OrgName:     notice.OrgName,
			Title:       notice.Title,
			Description: notice.Description,
			StartTime:   notice.StartTime,
			EndTime:     notice.EndTime,
			RoomName:    notice.RoomName,
			Advisor:     advisor,
		},
	})
}

// EvictionTemplateData contains data for the meeting eviction email template
type EvictionTemplateData struct {
	FirstName    string
	OrgName      string
	MeetingTitle string
}

// SendMeetingEvicted tells an organization admin their meeting was removed to
// make way for a forced reservation.
func SendMeetingEvicted(s *email.Service, to, firstName, orgName, meetingTitle string) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("Meeting removed for %s | Epsilon", orgName),
		TemplateName: "meeting_evicted",
		TemplateData: EvictionTemplateData{
			FirstName:    firstName,
			OrgName:      orgName,
			MeetingTitle: meetingTitle,
		},
	})
}
