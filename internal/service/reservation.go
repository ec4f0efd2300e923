// internal/service/reservation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/google/uuid"
)

const (
	forcedReservationTitle       = "Reserved Meeting"
	forcedReservationDescription = "This meeting was reserved by an admin."
)

// ReservationService implements the privileged force-reservation path: rather
// than rejecting on conflict, it evicts the sitting meeting.
type ReservationService struct {
	meetings repository.MeetingRepositoryIface
	notifier Notifier
}

func NewReservationService(meetings repository.MeetingRepositoryIface, notifier Notifier) *ReservationService {
	return &ReservationService{meetings: meetings, notifier: notifier}
}

type ForceReserveInput struct {
	RoomID         uuid.UUID `json:"room_id" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
}

// ForceReserve books the room over [start, end) regardless of conflicts or
// quotas. Any meeting already holding the room is deleted and its
// organization notified. The eviction notice must not block the reservation,
// but a failed delete aborts it: the room may still be occupied.
func (s *ReservationService) ForceReserve(ctx context.Context, input ForceReserveInput) (*model.Meeting, error) {
	if input.StartTime.IsZero() || input.EndTime.IsZero() || !input.EndTime.After(input.StartTime) {
		return nil, domain.ErrInvalidMeetingTime
	}

	occupancies, err := s.meetings.FindOverlapping(ctx, input.StartTime, input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("finding conflicting meetings: %w", err)
	}

	for _, occ := range occupancies {
		if occ.RoomID != input.RoomID {
			continue
		}

		evicted, err := s.meetings.DeleteReturning(ctx, occ.MeetingID)
		if err != nil {
			// A vanished meeting means someone else already cleared the slot.
			if errors.Is(err, domain.ErrMeetingNotFound) {
				continue
			}
			return nil, fmt.Errorf("evicting conflicting meeting: %w", err)
		}

		dispatchNotification(s.notifier, evicted.OrganizationID, model.NotificationEvent{
			Kind:    model.NotifyMeetingEvicted,
			Meeting: evicted,
		})
	}

	roomID := input.RoomID
	meeting := &model.Meeting{
		OrganizationID: input.OrganizationID,
		RoomID:         &roomID,
		Title:          forcedReservationTitle,
		Description:    forcedReservationDescription,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
	}

	// No quota applies here. The exclusion constraint still has the final
	// word: a concurrent booking surfaces as ErrRoomConflict.
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}

	return meeting, nil
}
