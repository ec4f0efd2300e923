// internal/model/meeting.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	RoomID         *uuid.UUID `gorm:"type:uuid;index" json:"room_id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	StartTime      time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time  `gorm:"not null" json:"end_time"`
	IsPublic       bool       `gorm:"not null;default:false" json:"is_public"`
	Advisor        *string    `gorm:"type:text" json:"advisor,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Room         *Room        `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Virtual reports whether the meeting has no physical room.
func (m *Meeting) Virtual() bool {
	return m.RoomID == nil
}

// BookingRequest is the transient input to availability validation. MeetingID
// is set on edits so the meeting being moved does not conflict with itself.
type BookingRequest struct {
	StartTime      time.Time
	EndTime        time.Time
	RoomID         *uuid.UUID
	OrganizationID *uuid.UUID
	MeetingID      *uuid.UUID
}

// RoomOccupancy is one row of the overlap lookup: which meeting holds which
// room somewhere inside the requested window.
type RoomOccupancy struct {
	RoomID    uuid.UUID `json:"room_id"`
	MeetingID uuid.UUID `json:"meeting_id"`
}
