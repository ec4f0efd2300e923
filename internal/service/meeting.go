// internal/service/meeting.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MeetingService struct {
	meetings repository.MeetingRepositoryIface
	rooms    repository.RoomRepositoryIface
	checker  *AvailabilityChecker
	notifier Notifier
	validate *validator.Validate
}

func NewMeetingService(
	meetings repository.MeetingRepositoryIface,
	rooms repository.RoomRepositoryIface,
	checker *AvailabilityChecker,
	notifier Notifier,
) *MeetingService {
	return &MeetingService{
		meetings: meetings,
		rooms:    rooms,
		checker:  checker,
		notifier: notifier,
		validate: validator.New(),
	}
}

type CreateMeetingInput struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	RoomID         *uuid.UUID `json:"room_id"`
	StartTime      time.Time  `json:"start_time" validate:"required"`
	EndTime        time.Time  `json:"end_time" validate:"required"`
	IsPublic       bool       `json:"is_public"`
	Advisor        *string    `json:"advisor"`
}

// Create validates the booking, persists the meeting, and notifies the
// organization's admins of the new meeting.
func (s *MeetingService) Create(ctx context.Context, input CreateMeetingInput) (*model.Meeting, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	orgID := input.OrganizationID
	if err := s.checker.Validate(ctx, model.BookingRequest{
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		RoomID:         input.RoomID,
		OrganizationID: &orgID,
	}); err != nil {
		return nil, err
	}

	meeting := &model.Meeting{
		OrganizationID: input.OrganizationID,
		RoomID:         input.RoomID,
		Title:          input.Title,
		Description:    input.Description,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		IsPublic:       input.IsPublic,
		Advisor:        normalizeAdvisor(input.Advisor),
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}

	dispatchNotification(s.notifier, meeting.OrganizationID, model.NotificationEvent{
		Kind:     model.NotifyMeetingScheduled,
		Meeting:  meeting,
		RoomName: s.roomName(ctx, meeting.RoomID),
	})

	return meeting, nil
}

type EditMeetingInput struct {
	MeetingID   uuid.UUID  `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	RoomID      *uuid.UUID `json:"room_id"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     time.Time  `json:"end_time" validate:"required"`
	IsPublic    bool       `json:"is_public"`
	Advisor     *string    `json:"advisor"`
}

// Edit replaces a meeting's time, room, and metadata. The meeting is excluded
// from its own conflict and quota checks.
func (s *MeetingService) Edit(ctx context.Context, input EditMeetingInput) (*model.Meeting, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	meeting, err := s.meetings.FindByID(ctx, input.MeetingID)
	if err != nil {
		return nil, err
	}

	meetingID := input.MeetingID
	orgID := meeting.OrganizationID
	if err := s.checker.Validate(ctx, model.BookingRequest{
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		RoomID:         input.RoomID,
		OrganizationID: &orgID,
		MeetingID:      &meetingID,
	}); err != nil {
		return nil, err
	}

	meeting.Title = input.Title
	meeting.Description = input.Description
	meeting.RoomID = input.RoomID
	meeting.Room = nil
	meeting.StartTime = input.StartTime
	meeting.EndTime = input.EndTime
	meeting.IsPublic = input.IsPublic
	meeting.Advisor = normalizeAdvisor(input.Advisor)

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	dispatchNotification(s.notifier, meeting.OrganizationID, model.NotificationEvent{
		Kind:     model.NotifyMeetingUpdated,
		Meeting:  meeting,
		RoomName: s.roomName(ctx, meeting.RoomID),
	})

	return meeting, nil
}

// Delete cancels a meeting and notifies the organization.
func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	meeting, err := s.meetings.DeleteReturning(ctx, id)
	if err != nil {
		return err
	}

	dispatchNotification(s.notifier, meeting.OrganizationID, model.NotificationEvent{
		Kind:     model.NotifyMeetingCanceled,
		Meeting:  meeting,
		RoomName: s.roomName(ctx, meeting.RoomID),
	})

	return nil
}

// Schedule lists meetings intersecting [start, end).
func (s *MeetingService) Schedule(ctx context.Context, start, end time.Time) ([]model.Meeting, error) {
	return s.meetings.ListBetween(ctx, start, end)
}

func (s *MeetingService) roomName(ctx context.Context, roomID *uuid.UUID) string {
	if roomID == nil {
		return "Virtual"
	}
	room, err := s.rooms.FindByID(ctx, *roomID)
	if err != nil {
		return "Virtual"
	}
	return room.Name
}

// normalizeAdvisor treats blank advisor strings as unset.
func normalizeAdvisor(advisor *string) *string {
	if advisor == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*advisor)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
