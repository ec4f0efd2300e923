package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMeetingFindOverlapping(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewMeetingRepository(db)

	start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	roomID := uuid.New()
	meetingID := uuid.New()

	// The window is half open: start_time < end AND end_time > start, so a
	// meeting ending exactly at the window's start does not match.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT room_id, id AS meeting_id FROM meetings
		 WHERE room_id IS NOT NULL AND start_time < $1 AND end_time > $2`,
	)).
		WithArgs(end, start).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "meeting_id"}).
			AddRow(roomID.String(), meetingID.String()))

	occupancies, err := repo.FindOverlapping(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, occupancies, 1)
	assert.Equal(t, roomID, occupancies[0].RoomID)
	assert.Equal(t, meetingID, occupancies[0].MeetingID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingCountFutureRoomBookings(t *testing.T) {
	orgID := uuid.New()
	after := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("counts all future room bookings", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT count(*) FROM meetings
		 WHERE organization_id = $1 AND room_id IS NOT NULL AND start_time >= $2`,
		)).
			WithArgs(orgID, after).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

		count, err := repo.CountFutureRoomBookings(context.Background(), orgID, after, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excludes the meeting being edited", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)
		excludeID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT count(*) FROM meetings
		 WHERE organization_id = $1 AND room_id IS NOT NULL AND start_time >= $2 AND id <> $3`,
		)).
			WithArgs(orgID, after, excludeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

		count, err := repo.CountFutureRoomBookings(context.Background(), orgID, after, &excludeID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMeetingDeleteReturning(t *testing.T) {
	t.Run("returns the deleted row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)

		meetingID := uuid.New()
		orgID := uuid.New()
		start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(
			`DELETE FROM meetings WHERE id = $1
		 RETURNING id, organization_id, room_id, title, description, start_time, end_time, is_public, advisor`,
		)).
			WithArgs(meetingID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "organization_id", "room_id", "title", "description",
				"start_time", "end_time", "is_public", "advisor",
			}).AddRow(
				meetingID.String(), orgID.String(), nil, "Chess Club Weekly", "",
				start, start.Add(time.Hour), false, nil,
			))

		meeting, err := repo.DeleteReturning(context.Background(), meetingID)
		require.NoError(t, err)
		assert.Equal(t, meetingID, meeting.ID)
		assert.Equal(t, orgID, meeting.OrganizationID)
		assert.Equal(t, "Chess Club Weekly", meeting.Title)
		assert.Nil(t, meeting.RoomID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing meeting maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)
		meetingID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM meetings WHERE id = $1`)).
			WithArgs(meetingID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "organization_id", "room_id", "title", "description",
				"start_time", "end_time", "is_public", "advisor",
			}))

		_, err := repo.DeleteReturning(context.Background(), meetingID)
		assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
	})
}

func TestMeetingCreateMapsExclusionViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewMeetingRepository(db)

	roomID := uuid.New()
	start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "meetings"`).
		WillReturnError(&pgconn.PgError{Code: "23P01", ConstraintName: "meetings_room_time_excl"})

	err := repo.Create(context.Background(), &model.Meeting{
		OrganizationID: uuid.New(),
		RoomID:         &roomID,
		Title:          "Chess Club Weekly",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrRoomConflict)
}

func TestMeetingDelete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)
		meetingID := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "meetings" WHERE id = $1`)).
			WithArgs(meetingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), meetingID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing meeting maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMeetingRepository(db)
		meetingID := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "meetings" WHERE id = $1`)).
			WithArgs(meetingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), meetingID), domain.ErrMeetingNotFound)
	})
}
