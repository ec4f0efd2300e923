// internal/repository/meeting.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepositoryIface interface {
	Create(ctx context.Context, meeting *model.Meeting) error
	Update(ctx context.Context, meeting *model.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteReturning(ctx context.Context, id uuid.UUID) (*model.Meeting, error)
	FindOverlapping(ctx context.Context, start, end time.Time) ([]model.RoomOccupancy, error)
	CountFutureRoomBookings(ctx context.Context, orgID uuid.UUID, after time.Time, excludeID *uuid.UUID) (int64, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Meeting, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.Meeting, error)
}

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		// The room/time exclusion constraint closes the race between the
		// overlap check and this insert; a violation here is a conflict
		// discovered late, not an internal failure.
		if isExclusionViolation(err) {
			return domain.ErrRoomConflict
		}
		return fmt.Errorf("creating meeting: %w", err)
	}
	return nil
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *model.Meeting) error {
	if err := r.db.WithContext(ctx).Save(meeting).Error; err != nil {
		if isExclusionViolation(err) {
			return domain.ErrRoomConflict
		}
		return fmt.Errorf("updating meeting: %w", err)
	}
	return nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := r.db.WithContext(ctx).Preload("Room").First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("finding meeting: %w", err)
	}
	return &meeting, nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Meeting{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

// DeleteReturning removes a meeting and hands back the deleted row in one
// statement, so eviction notices are built from data captured atomically with
// the delete.
func (r *MeetingRepository) DeleteReturning(ctx context.Context, id uuid.UUID) (*model.Meeting, error) {
	var meeting model.Meeting
	result := r.db.WithContext(ctx).Raw(
		`DELETE FROM meetings WHERE id = ?
		 RETURNING id, organization_id, room_id, title, description, start_time, end_time, is_public, advisor`,
		id,
	).Scan(&meeting)
	if result.Error != nil {
		return nil, fmt.Errorf("deleting meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrMeetingNotFound
	}
	return &meeting, nil
}

// FindOverlapping returns every room occupancy intersecting [start, end).
func (r *MeetingRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]model.RoomOccupancy, error) {
	var occupancies []model.RoomOccupancy
	err := r.db.WithContext(ctx).Raw(
		`SELECT room_id, id AS meeting_id FROM meetings
		 WHERE room_id IS NOT NULL AND start_time < ? AND end_time > ?`,
		end, start,
	).Scan(&occupancies).Error
	if err != nil {
		return nil, fmt.Errorf("finding overlapping meetings: %w", err)
	}
	return occupancies, nil
}

// CountFutureRoomBookings counts an organization's room-bound meetings
// starting at or after the cutoff, optionally excluding one meeting (the one
// being edited).
func (r *MeetingRepository) CountFutureRoomBookings(ctx context.Context, orgID uuid.UUID, after time.Time, excludeID *uuid.UUID) (int64, error) {
	query := `SELECT count(*) FROM meetings
		 WHERE organization_id = ? AND room_id IS NOT NULL AND start_time >= ?`
	args := []interface{}{orgID, after}
	if excludeID != nil {
		query += ` AND id <> ?`
		args = append(args, *excludeID)
	}

	var count int64
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("counting room bookings: %w", err)
	}
	return count, nil
}

func (r *MeetingRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("start_time").Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("listing meetings by room: %w", err)
	}
	return meetings, nil
}

func (r *MeetingRepository) ListBetween(ctx context.Context, start, end time.Time) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	return meetings, nil
}
