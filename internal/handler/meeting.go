// internal/handler/meeting.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type MeetingHandler struct {
	meetingService *service.MeetingService
}

func NewMeetingHandler(meetingService *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

type MeetingResponse struct {
	BaseResponse
	Meeting *model.Meeting `json:"meeting"`
}

func (h *MeetingHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateMeetingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	meeting, err := h.meetingService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !domain.IsBookingRejection(err) && !errors.Is(err, domain.ErrMeetingNotFound) && !errors.Is(err, domain.ErrRoomNotFound) {
			slog.ErrorContext(r.Context(), "Meeting creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondBookingError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, MeetingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Meeting:      meeting,
	})
}

func (h *MeetingHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid meeting ID")
		return
	}

	var input service.EditMeetingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.MeetingID = id

	meeting, err := h.meetingService.Edit(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !domain.IsBookingRejection(err) && !errors.Is(err, domain.ErrMeetingNotFound) && !errors.Is(err, domain.ErrRoomNotFound) {
			slog.ErrorContext(r.Context(), "Meeting update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondBookingError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MeetingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Meeting:      meeting,
	})
}

func (h *MeetingHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid meeting ID")
		return
	}

	if err := h.meetingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMeetingNotFound) {
			respondWithError(w, http.StatusNotFound, "Meeting not found")
			return
		}
		slog.ErrorContext(r.Context(), "Meeting deletion error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type ScheduleResponse struct {
	BaseResponse
	Meetings []model.Meeting `json:"meetings"`
}

// ScheduleHandler returns meetings overlapping [start, end). Both bounds come
// from RFC 3339 query parameters; end defaults to a week past start.
func (h *MeetingHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing start parameter")
		return
	}

	end := start.Add(7 * 24 * time.Hour)
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid end parameter")
			return
		}
	}
	if !end.After(start) {
		respondWithError(w, http.StatusBadRequest, "end must be after start")
		return
	}

	meetings, err := h.meetingService.Schedule(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Schedule fetch error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, ScheduleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Meetings:     meetings,
	})
}
