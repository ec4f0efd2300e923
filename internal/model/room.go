// internal/model/room.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// weekdayNames is Sunday-first to line up with time.Weekday ordinals; the
// stored day strings depend on that ordering.
var weekdayNames = [7]string{
	"SUNDAY",
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
}

// WeekdayName returns the stored day-name string for t's weekday.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

type Room struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string         `gorm:"type:text;not null" json:"name"`
	Floor            int            `gorm:"type:int;not null" json:"floor"`
	AvailableDays    pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"available_days"`
	ApprovalRequired bool           `gorm:"not null;default:false" json:"approval_required"`
	Comments         string         `gorm:"type:text" json:"comments"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// AllowsDay reports whether the room can be booked on the given day name.
func (r *Room) AllowsDay(day string) bool {
	for _, d := range r.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}
