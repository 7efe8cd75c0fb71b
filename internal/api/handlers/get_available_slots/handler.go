package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DefenseService/internal/usecase/get_available_slots"
)

const (
	msgInvalidReaderID = "invalid reader id, expected a uuid"
	msgReadersRequired = "both firstReaderId and secondReaderId are required when filtering by readers"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots
// Query params: firstReaderId, secondReaderId (оба или ни одного)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	first := query.Get("firstReaderId")
	second := query.Get("secondReaderId")

	// Фильтр по читателям либо задан полностью, либо отсутствует
	if (first == "") != (second == "") {
		h.logger.Warn("GET /schedule/slots - Incomplete reader pair")
		handlers.RespondBadRequest(w, msgReadersRequired)
		return
	}

	req := &getAvailableSlots.Request{}
	if first != "" {
		firstID, err := uuid.Parse(first)
		if err != nil {
			h.logger.Warn("GET /schedule/slots - Invalid firstReaderId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReaderID)
			return
		}
		secondID, err := uuid.Parse(second)
		if err != nil {
			h.logger.Warn("GET /schedule/slots - Invalid secondReaderId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReaderID)
			return
		}
		req.ReaderIDs = []uuid.UUID{firstID, secondID}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /schedule/slots - Failed to compute slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
