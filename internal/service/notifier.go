// internal/service/notifier.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campusclubs/epsilon/internal/email"
	"github.com/campusclubs/epsilon/internal/email/mailer"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./notifier.go -destination=../mocks/mock_notifier.go -package=mocks Notifier

// Notifier delivers organization notifications. Delivery is best effort:
// booking outcomes never depend on it.
type Notifier interface {
	// Notify resolves the organization's CREATOR/ADMIN members and delivers
	// the event to each of them.
	Notify(ctx context.Context, orgID uuid.UUID, event model.NotificationEvent) error
	// NotifyUsers delivers the event to an explicit recipient list. Used when
	// the membership rows are about to disappear (organization rejection) or
	// when a single member is addressed.
	NotifyUsers(ctx context.Context, org *model.Organization, recipients []*model.User, event model.NotificationEvent) error
}

const notifyTimeout = 30 * time.Second

// dispatchNotification fires a notification without holding up the request.
// Failures are logged and swallowed.
func dispatchNotification(n Notifier, orgID uuid.UUID, event model.NotificationEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.Notify(ctx, orgID, event); err != nil {
			slog.Error("notification delivery failed",
				"kind", event.Kind,
				"organization_id", orgID,
				"error", err,
			)
		}
	}()
}

// dispatchUserNotification is dispatchNotification for explicit recipients.
func dispatchUserNotification(n Notifier, org *model.Organization, recipients []*model.User, event model.NotificationEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.NotifyUsers(ctx, org, recipients, event); err != nil {
			slog.Error("notification delivery failed",
				"kind", event.Kind,
				"organization_id", org.ID,
				"error", err,
			)
		}
	}()
}

// EmailNotifier renders notification events through the email templates and
// sends them to organization admins.
type EmailNotifier struct {
	orgs  repository.OrganizationRepositoryIface
	email *email.Service
	loc   *time.Location
}

func NewEmailNotifier(orgs repository.OrganizationRepositoryIface, emailService *email.Service, loc *time.Location) *EmailNotifier {
	return &EmailNotifier{orgs: orgs, email: emailService, loc: loc}
}

func (n *EmailNotifier) Notify(ctx context.Context, orgID uuid.UUID, event model.NotificationEvent) error {
	org, err := n.orgs.FindByID(ctx, orgID)
	if err != nil {
		return err
	}

	admins, err := n.orgs.FindAdmins(ctx, orgID)
	if err != nil {
		return err
	}

	return n.NotifyUsers(ctx, org, admins, event)
}

func (n *EmailNotifier) NotifyUsers(ctx context.Context, org *model.Organization, recipients []*model.User, event model.NotificationEvent) error {
	var errs []error
	for _, user := range recipients {
		if err := n.send(org, user, event); err != nil {
			slog.Error("sending notification email",
				"kind", event.Kind,
				"to", user.Email,
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *EmailNotifier) send(org *model.Organization, user *model.User, event model.NotificationEvent) error {
	switch event.Kind {
	case model.NotifyMeetingScheduled, model.NotifyMeetingUpdated, model.NotifyMeetingCanceled:
		return mailer.SendMeetingNotice(n.email, mailer.MeetingNotice{
			To:          user.Email,
			Kind:        event.Kind,
			OrgName:     org.Name,
			Title:       event.Meeting.Title,
			Description: event.Meeting.Description,
			StartTime:   n.formatTime(event.Meeting.StartTime),
			EndTime:     n.formatTime(event.Meeting.EndTime),
			RoomName:    event.RoomName,
			Advisor:     event.Meeting.Advisor,
		})
	case model.NotifyMeetingEvicted:
		return mailer.SendMeetingEvicted(n.email, user.Email, user.FirstName, org.Name, event.Meeting.Title)
	case model.NotifyRoomMeetingsRemoved:
		removed := make([]mailer.RemovedMeetingLine, 0, len(event.Removed))
		for _, m := range event.Removed {
			removed = append(removed, mailer.RemovedMeetingLine{
				Title:     m.Title,
				StartTime: n.formatTime(m.StartTime),
			})
		}
		return mailer.SendRoomMeetingsRemoved(n.email, user.Email, user.FirstName, org.Name, removed)
	case model.NotifyStrikeIssued:
		return mailer.SendStrikeIssued(n.email, user.Email, user.FirstName, org.Name, event.Reason)
	case model.NotifyOrganizationApproved:
		return mailer.SendOrganizationApproved(n.email, user.Email, user.FirstName, org.Name)
	case model.NotifyOrganizationRejected:
		return mailer.SendOrganizationRejected(n.email, user.Email, user.FirstName, org.Name, event.Reason)
	case model.NotifyMemberApproved:
		return mailer.SendMemberApproved(n.email, user.Email, user.FirstName, org.Name)
	default:
		return nil
	}
}

func (n *EmailNotifier) formatTime(t time.Time) string {
	return t.In(n.loc).Format("January 2, 2006, 3:04 PM") + " EST"
}
