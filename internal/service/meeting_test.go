package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/mocks"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMeetingService(t *testing.T) (*service.MeetingService, *mocks.MockMeetingRepositoryIface, *mocks.MockRoomRepositoryIface, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	rooms := mocks.NewMockRoomRepositoryIface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	checker := service.NewAvailabilityChecker(meetings, rooms, 5, 30*time.Minute, newYork(), fixedClock())
	return service.NewMeetingService(meetings, rooms, checker, notifier), meetings, rooms, notifier
}

func TestMeetingCreate(t *testing.T) {
	t.Run("books a room and notifies", func(t *testing.T) {
		svc, meetings, rooms, notifier := newMeetingService(t)

		orgID := uuid.New()
		roomID := uuid.New()
		start := testNow.Add(24 * time.Hour) // Tuesday
		end := start.Add(time.Hour)
		room := &model.Room{ID: roomID, Name: "Room 301", AvailableDays: pq.StringArray{"TUESDAY"}}

		meetings.EXPECT().
			CountFutureRoomBookings(gomock.Any(), orgID, gomock.Any(), nil).
			Return(int64(0), nil)
		meetings.EXPECT().
			FindOverlapping(gomock.Any(), start, end).
			Return(nil, nil)
		rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(room, nil).Times(2)
		meetings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		notified := make(chan struct{}, 1)
		notifier.EXPECT().
			Notify(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
				assert.Equal(t, model.NotifyMeetingScheduled, event.Kind)
				assert.Equal(t, "Room 301", event.RoomName)
				notified <- struct{}{}
				return nil
			})

		meeting, err := svc.Create(context.Background(), service.CreateMeetingInput{
			OrganizationID: orgID,
			Title:          "Robotics Build Night",
			RoomID:         &roomID,
			StartTime:      start,
			EndTime:        end,
		})
		require.NoError(t, err)
		assert.Equal(t, "Robotics Build Night", meeting.Title)

		waitForNotifications(t, notified, 1)
	})

	t.Run("virtual meeting reports a virtual room name", func(t *testing.T) {
		svc, meetings, _, notifier := newMeetingService(t)

		orgID := uuid.New()
		start := testNow.Add(24 * time.Hour)

		meetings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		notified := make(chan struct{}, 1)
		notifier.EXPECT().
			Notify(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
				assert.Equal(t, "Virtual", event.RoomName)
				notified <- struct{}{}
				return nil
			})

		_, err := svc.Create(context.Background(), service.CreateMeetingInput{
			OrganizationID: orgID,
			Title:          "Online Q&A",
			StartTime:      start,
			EndTime:        start.Add(time.Hour),
		})
		require.NoError(t, err)

		waitForNotifications(t, notified, 1)
	})

	t.Run("validation failure never persists", func(t *testing.T) {
		svc, _, _, _ := newMeetingService(t)

		_, err := svc.Create(context.Background(), service.CreateMeetingInput{
			OrganizationID: uuid.New(),
			Title:          "Too Short",
			StartTime:      testNow.Add(24 * time.Hour),
			EndTime:        testNow.Add(24*time.Hour + 10*time.Minute),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidMeetingTime)
	})

	t.Run("missing title is rejected before validation", func(t *testing.T) {
		svc, _, _, _ := newMeetingService(t)

		_, err := svc.Create(context.Background(), service.CreateMeetingInput{
			OrganizationID: uuid.New(),
			StartTime:      testNow.Add(24 * time.Hour),
			EndTime:        testNow.Add(25 * time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMeetingEditExcludesItself(t *testing.T) {
	svc, meetings, rooms, notifier := newMeetingService(t)

	orgID := uuid.New()
	roomID := uuid.New()
	meetingID := uuid.New()
	start := testNow.Add(24 * time.Hour)
	end := start.Add(time.Hour)
	room := &model.Room{ID: roomID, Name: "Room 301", AvailableDays: pq.StringArray{"TUESDAY"}}

	meetings.EXPECT().
		FindByID(gomock.Any(), meetingID).
		Return(&model.Meeting{ID: meetingID, OrganizationID: orgID, Title: "Old Title", RoomID: &roomID}, nil)
	meetings.EXPECT().
		CountFutureRoomBookings(gomock.Any(), orgID, gomock.Any(), &meetingID).
		Return(int64(4), nil)
	// The meeting's current slot shows up in the overlap scan but must not
	// count against itself.
	meetings.EXPECT().
		FindOverlapping(gomock.Any(), start, end).
		Return([]model.RoomOccupancy{{RoomID: roomID, MeetingID: meetingID}}, nil)
	rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(room, nil).Times(2)
	meetings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	notified := make(chan struct{}, 1)
	notifier.EXPECT().
		Notify(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
			assert.Equal(t, model.NotifyMeetingUpdated, event.Kind)
			notified <- struct{}{}
			return nil
		})

	meeting, err := svc.Edit(context.Background(), service.EditMeetingInput{
		MeetingID: meetingID,
		Title:     "New Title",
		RoomID:    &roomID,
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", meeting.Title)

	waitForNotifications(t, notified, 1)
}

func TestMeetingDelete(t *testing.T) {
	t.Run("cancels and notifies", func(t *testing.T) {
		svc, meetings, _, notifier := newMeetingService(t)

		orgID := uuid.New()
		meetingID := uuid.New()

		meetings.EXPECT().
			DeleteReturning(gomock.Any(), meetingID).
			Return(&model.Meeting{ID: meetingID, OrganizationID: orgID, Title: "Chess Club Weekly"}, nil)

		notified := make(chan struct{}, 1)
		notifier.EXPECT().
			Notify(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, event model.NotificationEvent) error {
				assert.Equal(t, model.NotifyMeetingCanceled, event.Kind)
				notified <- struct{}{}
				return nil
			})

		err := svc.Delete(context.Background(), meetingID)
		require.NoError(t, err)

		waitForNotifications(t, notified, 1)
	})

	t.Run("missing meeting surfaces not found", func(t *testing.T) {
		svc, meetings, _, _ := newMeetingService(t)
		meetingID := uuid.New()

		meetings.EXPECT().
			DeleteReturning(gomock.Any(), meetingID).
			Return(nil, domain.ErrMeetingNotFound)

		err := svc.Delete(context.Background(), meetingID)
		assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
	})
}
