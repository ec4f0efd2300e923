// internal/database/migrate.go
package database

import (
	"fmt"

	"github.com/campusclubs/epsilon/internal/model"
	"gorm.io/gorm"
)

// meetingOverlapConstraint closes the race between the availability check and
// the insert: two requests can both pass validation, but only one row can
// hold a room over an overlapping time range. Virtual meetings carry a NULL
// room_id and are exempt.
const meetingOverlapConstraint = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'meetings_room_time_excl'
	) THEN
		ALTER TABLE meetings
			ADD CONSTRAINT meetings_room_time_excl
			EXCLUDE USING gist (
				room_id WITH =,
				tstzrange(start_time, end_time) WITH &&
			)
			WHERE (room_id IS NOT NULL);
	END IF;
END
$$;
`

// Migrate brings the schema up to date. Extensions come first: citext backs
// the email column and btree_gist backs the room overlap constraint.
func Migrate(db *gorm.DB) error {
	for _, ext := range []string{"citext", "btree_gist"} {
		if err := db.Exec(fmt.Sprintf("CREATE EXTENSION IF NOT EXISTS %s", ext)).Error; err != nil {
			return fmt.Errorf("creating extension %s: %w", ext, err)
		}
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.Membership{},
		&model.Strike{},
		&model.Room{},
		&model.Meeting{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	if err := db.Exec(meetingOverlapConstraint).Error; err != nil {
		return fmt.Errorf("adding room overlap constraint: %w", err)
	}

	return nil
}
