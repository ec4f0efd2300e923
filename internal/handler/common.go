package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusclubs/epsilon/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondBookingError maps the booking validation sentinels to specific
// responses so clients always learn which rule they broke.
func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMeetingTime):
		respondWithError(w, http.StatusBadRequest, "Invalid meeting time or length")
	case errors.Is(err, domain.ErrMissingOrganization):
		respondWithError(w, http.StatusBadRequest, "Room bookings require an organization")
	case errors.Is(err, domain.ErrBookingQuotaExceeded):
		respondWithError(w, http.StatusConflict, "Organization has too many upcoming room bookings")
	case errors.Is(err, domain.ErrRoomConflict):
		respondWithError(w, http.StatusConflict, "Room is booked at that time")
	case errors.Is(err, domain.ErrRoomUnavailable):
		respondWithError(w, http.StatusBadRequest, "Room is not available on that day")
	case errors.Is(err, domain.ErrMeetingNotFound):
		respondWithError(w, http.StatusNotFound, "Meeting not found")
	case errors.Is(err, domain.ErrRoomNotFound):
		respondWithError(w, http.StatusNotFound, "Room not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
