// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Booking validation outcomes. Each is client-correctable and must stay
	// distinguishable; anything else bubbling out of the scheduler is an
	// internal failure.
	ErrInvalidMeetingTime   = errors.New("invalid meeting time")
	ErrMissingOrganization  = errors.New("room booking requires an organization")
	ErrBookingQuotaExceeded = errors.New("organization booking quota exceeded")
	ErrRoomConflict         = errors.New("room is booked at that time")
	ErrRoomUnavailable      = errors.New("room is not available on that day")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Organization-related errors
	ErrOrganizationNotFound   = errors.New("organization not found")
	ErrOrganizationNotPending = errors.New("organization is not pending approval")
	ErrOrganizationURLTaken   = errors.New("organization url already in use")
	ErrAlreadyMember          = errors.New("user is already a member")
	ErrMembershipNotFound     = errors.New("membership not found")

	// Meeting/room-related errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrRoomNotFound    = errors.New("room not found")
)

// IsBookingRejection reports whether err is one of the validation outcomes a
// caller can fix by changing the request, as opposed to an internal failure.
func IsBookingRejection(err error) bool {
	for _, target := range []error{
		ErrInvalidMeetingTime,
		ErrMissingOrganization,
		ErrBookingQuotaExceeded,
		ErrRoomConflict,
		ErrRoomUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
