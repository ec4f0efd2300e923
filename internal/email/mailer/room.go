// internal/email/mailer/room.go
package mailer

import (
	"fmt"

	"github.com/campusclubs/epsilon/internal/email"
)

// RemovedMeetingLine is one meeting entry in an aggregated removal email.
type RemovedMeetingLine struct {
	Title     string
	StartTime string
}

// RoomRemovalTemplateData contains data for the aggregated room-removal email
type RoomRemovalTemplateData struct {
	FirstName string
	OrgName   string
	Removed   []RemovedMeetingLine
}

// SendRoomMeetingsRemoved sends one email listing every meeting an
// organization lost when a room was taken out of service.
func SendRoomMeetingsRemoved(s *email.Service, to, firstName, orgName string, removed []RemovedMeetingLine) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("%s: Meetings Removed | Epsilon", orgName),
		TemplateName: "room_meetings_removed",
		TemplateData: RoomRemovalTemplateData{
			FirstName: firstName,
			OrgName:   orgName,
			Removed:   removed,
		},
	})
}
