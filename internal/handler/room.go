// internal/handler/room.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusclubs/epsilon/internal/domain"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

type RoomResponse struct {
	BaseResponse
	Room *model.Room `json:"room"`
}

type RoomListResponse struct {
	BaseResponse
	Rooms []*model.Room `json:"rooms"`
}

func (h *RoomHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	room, err := h.roomService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Room creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusCreated, RoomResponse{
		BaseResponse: BaseResponse{Ok: true},
		Room:         room,
	})
}

func (h *RoomHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Room listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, RoomListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Rooms:        rooms,
	})
}

// UpdateHandler replaces a room's definition. Meetings that no longer fit the
// room's available days are removed as part of the update.
func (h *RoomHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var input service.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	room, err := h.roomService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRoomNotFound):
			respondWithError(w, http.StatusNotFound, "Room not found")
		default:
			slog.ErrorContext(r.Context(), "Room update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, RoomResponse{
		BaseResponse: BaseResponse{Ok: true},
		Room:         room,
	})
}

func (h *RoomHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.roomService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		slog.ErrorContext(r.Context(), "Room deletion error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
