// internal/handler/reservation.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type ReservationHandler struct {
	reservationService *service.ReservationService
}

func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

type ReservationResponse struct {
	BaseResponse
	Meeting *model.Meeting `json:"meeting"`
}

// ForceReserveHandler books a room for an organization, evicting whatever
// meetings currently hold it. Admin only.
func (h *ReservationHandler) ForceReserveHandler(w http.ResponseWriter, r *http.Request) {
	var input service.ForceReserveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	meeting, err := h.reservationService.ForceReserve(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !domain.IsBookingRejection(err) && !errors.Is(err, domain.ErrRoomNotFound) {
			slog.ErrorContext(r.Context(), "Force reservation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondBookingError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ReservationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Meeting:      meeting,
	})
}
