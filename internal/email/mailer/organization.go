// internal/email/mailer/organization.go
package mailer

import (
	"fmt"

	"github.com/campusclubs/epsilon/internal/email"
)

// OrgTemplateData contains data shared by the organization lifecycle emails
type OrgTemplateData struct {
	FirstName string
	OrgName   string
	Reason    string
}

// SendOrganizationApproved congratulates an organization's admins on charter
// approval.
func SendOrganizationApproved(s *email.Service, to, firstName, orgName string) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("%s has been approved | Epsilon", orgName),
		TemplateName: "organization_approved",
		TemplateData: OrgTemplateData{FirstName: firstName, OrgName: orgName},
	})
}

// SendOrganizationRejected tells an organization's admins their charter was
// turned down.
func SendOrganizationRejected(s *email.Service, to, firstName, orgName, reason string) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("%s has been rejected | Epsilon", orgName),
		TemplateName: "organization_rejected",
		TemplateData: OrgTemplateData{FirstName: firstName, OrgName: orgName, Reason: reason},
	})
}

// SendMemberApproved welcomes a member whose join request was accepted.
func SendMemberApproved(s *email.Service, to, firstName, orgName string) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("Welcome to %s | Epsilon", orgName),
		TemplateName: "member_approved",
		TemplateData: OrgTemplateData{FirstName: firstName, OrgName: orgName},
	})
}

// SendStrikeIssued notifies an organization's admins of a disciplinary strike.
func SendStrikeIssued(s *email.Service, to, firstName, orgName, reason string) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("%s has received a strike | Epsilon", orgName),
		TemplateName: "strike_issued",
		TemplateData: OrgTemplateData{FirstName: firstName, OrgName: orgName, Reason: reason},
	})
}
