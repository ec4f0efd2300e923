// internal/repository/room.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepositoryIface interface {
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error)
	FindAll(ctx context.Context) ([]*model.Room, error)
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("creating room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	if err := r.db.WithContext(ctx).Save(room).Error; err != nil {
		return fmt.Errorf("updating room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Room{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("finding room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	var rooms []*model.Room
	if err := r.db.WithContext(ctx).Order("floor, name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("finding all rooms: %w", err)
	}
	return rooms, nil
}
