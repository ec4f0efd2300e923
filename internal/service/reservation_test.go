package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/mocks"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// waitForNotifications blocks until the expected number of async deliveries
// has fired, so mock expectations settle before the controller is checked.
func waitForNotifications(t *testing.T, ch <-chan struct{}, want int) {
	t.Helper()
	for i := 0; i < want; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for notification %d of %d", i+1, want)
		}
	}
}

func TestForceReserveEvictsOccupant(t *testing.T) {
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := service.NewReservationService(meetings, notifier)

	roomID := uuid.New()
	reservingOrg := uuid.New()
	occupantOrg := uuid.New()
	occupantID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	occupant := &model.Meeting{
		ID:             occupantID,
		OrganizationID: occupantOrg,
		RoomID:         &roomID,
		Title:          "Chess Club Weekly",
		StartTime:      start,
		EndTime:        end,
	}

	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: roomID, MeetingID: occupantID}}, nil)
	meetings.EXPECT().
		DeleteReturning(gomock.Any(), occupantID).
		Return(occupant, nil)
	meetings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		Notify(gomock.Any(), occupantOrg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
			assert.Equal(t, model.NotifyMeetingEvicted, event.Kind)
			assert.Equal(t, occupant, event.Meeting)
			notified <- struct{}{}
			return nil
		})

	meeting, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         roomID,
		OrganizationID: reservingOrg,
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reserved Meeting", meeting.Title)
	assert.Equal(t, "This meeting was reserved by an admin.", meeting.Description)
	assert.Equal(t, reservingOrg, meeting.OrganizationID)
	require.NotNil(t, meeting.RoomID)
	assert.Equal(t, roomID, *meeting.RoomID)

	waitForNotifications(t, notified, 1)
}

func TestForceReserveIgnoresOtherRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := service.NewReservationService(meetings, notifier)

	roomID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	// The overlapping meeting sits in a different room; nothing is evicted
	// and nobody is notified.
	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: uuid.New(), MeetingID: uuid.New()}}, nil)
	meetings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         roomID,
		OrganizationID: uuid.New(),
		StartTime:      start,
		EndTime:        end,
	})
	assert.NoError(t, err)
}

func TestForceReserveOccupantAlreadyGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := service.NewReservationService(meetings, notifier)

	roomID := uuid.New()
	occupantID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: roomID, MeetingID: occupantID}}, nil)
	meetings.EXPECT().
		DeleteReturning(gomock.Any(), occupantID).
		Return(nil, domain.ErrMeetingNotFound)
	meetings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         roomID,
		OrganizationID: uuid.New(),
		StartTime:      start,
		EndTime:        end,
	})
	assert.NoError(t, err)
}

func TestForceReserveAbortsWhenEvictionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := service.NewReservationService(meetings, notifier)

	roomID := uuid.New()
	occupantID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: roomID, MeetingID: occupantID}}, nil)
	meetings.EXPECT().
		DeleteReturning(gomock.Any(), occupantID).
		Return(nil, errors.New("deadlock detected"))

	// Create is never reached; the room may still be occupied.
	_, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         roomID,
		OrganizationID: uuid.New(),
		StartTime:      start,
		EndTime:        end,
	})
	assert.Error(t, err)
}

func TestForceReserveSurvivesNotificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := service.NewReservationService(meetings, notifier)

	roomID := uuid.New()
	occupantOrg := uuid.New()
	occupantID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: roomID, MeetingID: occupantID}}, nil)
	meetings.EXPECT().
		DeleteReturning(gomock.Any(), occupantID).
		Return(&model.Meeting{ID: occupantID, OrganizationID: occupantOrg}, nil)
	meetings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		Notify(gomock.Any(), occupantOrg, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, model.NotificationEvent) error {
			notified <- struct{}{}
			return errors.New("smtp unavailable")
		})

	_, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         roomID,
		OrganizationID: uuid.New(),
		StartTime:      start,
		EndTime:        end,
	})
	assert.NoError(t, err)

	waitForNotifications(t, notified, 1)
}

func TestForceReserveRejectsBadWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewReservationService(
		mocks.NewMockMeetingRepositoryIface(ctrl),
		mocks.NewMockNotifier(ctrl),
	)

	_, err := svc.ForceReserve(context.Background(), service.ForceReserveInput{
		RoomID:         uuid.New(),
		OrganizationID: uuid.New(),
		StartTime:      testNow.Add(2 * time.Hour),
		EndTime:        testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMeetingTime)
}
