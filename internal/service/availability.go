// internal/service/availability.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
)

// Clock supplies "now" so validation is deterministic in tests.
type Clock func() time.Time

// AvailabilityChecker decides whether a booking request may be persisted. It
// has no side effects; callers act on its verdict.
type AvailabilityChecker struct {
	meetings        repository.MeetingRepositoryIface
	rooms           repository.RoomRepositoryIface
	maxRoomBookings int
	minDuration     time.Duration
	loc             *time.Location
	now             Clock
}

func NewAvailabilityChecker(
	meetings repository.MeetingRepositoryIface,
	rooms repository.RoomRepositoryIface,
	maxRoomBookings int,
	minDuration time.Duration,
	loc *time.Location,
	now Clock,
) *AvailabilityChecker {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityChecker{
		meetings:        meetings,
		rooms:           rooms,
		maxRoomBookings: maxRoomBookings,
		minDuration:     minDuration,
		loc:             loc,
		now:             now,
	}
}

// Validate checks a booking request in order: time window, organization
// quota, room conflicts, room day availability. It returns nil when the
// request may proceed, one of the domain booking sentinels when the caller
// can correct the request, and a wrapped repository error otherwise.
func (c *AvailabilityChecker) Validate(ctx context.Context, req model.BookingRequest) error {
	now := c.now()

	// Window must be well formed and entirely in the future. A zero or
	// negative window fails the minimum-duration check on its own.
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.ErrInvalidMeetingTime
	}
	if req.EndTime.Sub(req.StartTime) < c.minDuration {
		return domain.ErrInvalidMeetingTime
	}
	if req.StartTime.Before(now) {
		return domain.ErrInvalidMeetingTime
	}

	// Virtual meetings skip all room logic.
	if req.RoomID == nil {
		return nil
	}

	if req.OrganizationID == nil {
		return domain.ErrMissingOrganization
	}

	cutoff := c.startOfToday(now)
	count, err := c.meetings.CountFutureRoomBookings(ctx, *req.OrganizationID, cutoff, req.MeetingID)
	if err != nil {
		return fmt.Errorf("checking booking quota: %w", err)
	}
	if count >= int64(c.maxRoomBookings) {
		return domain.ErrBookingQuotaExceeded
	}

	occupancies, err := c.meetings.FindOverlapping(ctx, req.StartTime, req.EndTime)
	if err != nil {
		return fmt.Errorf("checking room conflicts: %w", err)
	}
	for _, occ := range occupancies {
		if req.MeetingID != nil && occ.MeetingID == *req.MeetingID {
			continue
		}
		if occ.RoomID == *req.RoomID {
			return domain.ErrRoomConflict
		}
	}

	room, err := c.rooms.FindByID(ctx, *req.RoomID)
	if err != nil {
		return fmt.Errorf("checking room availability: %w", err)
	}
	if !room.AllowsDay(model.WeekdayName(req.StartTime.In(c.loc))) {
		return domain.ErrRoomUnavailable
	}

	return nil
}

// startOfToday truncates now to midnight in the scheduling timezone; the
// quota only counts meetings from today forward.
func (c *AvailabilityChecker) startOfToday(now time.Time) time.Time {
	local := now.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}
