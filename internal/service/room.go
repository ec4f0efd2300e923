// internal/service/room.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RoomService struct {
	rooms    repository.RoomRepositoryIface
	meetings repository.MeetingRepositoryIface
	notifier Notifier
	loc      *time.Location
	validate *validator.Validate
}

func NewRoomService(
	rooms repository.RoomRepositoryIface,
	meetings repository.MeetingRepositoryIface,
	notifier Notifier,
	loc *time.Location,
) *RoomService {
	return &RoomService{
		rooms:    rooms,
		meetings: meetings,
		notifier: notifier,
		loc:      loc,
		validate: validator.New(),
	}
}

type RoomInput struct {
	Name             string   `json:"name" validate:"required"`
	Floor            int      `json:"floor"`
	AvailableDays    []string `json:"available_days" validate:"required,dive,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	ApprovalRequired bool     `json:"approval_required"`
	Comments         string   `json:"comments"`
}

func (s *RoomService) Create(ctx context.Context, input RoomInput) (*model.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	room := &model.Room{
		Name:             input.Name,
		Floor:            input.Floor,
		AvailableDays:    pq.StringArray(input.AvailableDays),
		ApprovalRequired: input.ApprovalRequired,
		Comments:         input.Comments,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) List(ctx context.Context) ([]*model.Room, error) {
	return s.rooms.FindAll(ctx)
}

// Update edits a room. Meetings falling on a weekday the room no longer
// offers are evicted, grouped by organization, and each organization gets one
// aggregated notice.
func (s *RoomService) Update(ctx context.Context, id uuid.UUID, input RoomInput) (*model.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = input.Name
	room.Floor = input.Floor
	room.AvailableDays = pq.StringArray(input.AvailableDays)
	room.ApprovalRequired = input.ApprovalRequired
	room.Comments = input.Comments

	meetings, err := s.meetings.ListByRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	var invalid []model.Meeting
	for _, meeting := range meetings {
		if !room.AllowsDay(model.WeekdayName(meeting.StartTime.In(s.loc))) {
			invalid = append(invalid, meeting)
		}
	}

	// The day change must be durable before any meeting is evicted for it.
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	s.notifyEvictions(s.deleteMeetings(ctx, invalid))

	return room, nil
}

// Delete removes a room and every meeting still scheduled in it. Removals are
// grouped so each affected organization receives a single notice listing all
// of its lost meetings.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}

	meetings, err := s.meetings.ListByRoom(ctx, id)
	if err != nil {
		return err
	}

	// Meetings referencing the room must go before the room row itself.
	// Their notices are dispatched even if the room delete then fails, so
	// no organization loses a meeting without being told.
	evicted := s.deleteMeetings(ctx, meetings)

	deleteErr := s.rooms.Delete(ctx, id)

	s.notifyEvictions(evicted)

	return deleteErr
}

// deleteMeetings removes each meeting and returns the removals grouped by
// owning organization. A failed delete leaves that meeting in place and out
// of the notices.
func (s *RoomService) deleteMeetings(ctx context.Context, meetings []model.Meeting) map[uuid.UUID][]model.RemovedMeeting {
	evicted := make(map[uuid.UUID][]model.RemovedMeeting)
	for _, meeting := range meetings {
		if err := s.meetings.Delete(ctx, meeting.ID); err != nil {
			slog.Error("deleting meeting during room cascade",
				"meeting_id", meeting.ID,
				"error", err,
			)
			continue
		}
		evicted[meeting.OrganizationID] = append(evicted[meeting.OrganizationID], model.RemovedMeeting{
			Title:     meeting.Title,
			StartTime: meeting.StartTime,
		})
	}
	return evicted
}

func (s *RoomService) notifyEvictions(evicted map[uuid.UUID][]model.RemovedMeeting) {
	for orgID, removed := range evicted {
		dispatchNotification(s.notifier, orgID, model.NotificationEvent{
			Kind:    model.NotifyRoomMeetingsRemoved,
			Removed: removed,
		})
	}
}
