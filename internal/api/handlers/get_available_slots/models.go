package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DefenseService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Window *WindowInfo                    `json:"window"`
	Days   map[string]map[string]SlotInfo `json:"days"`
}

// WindowInfo активное окно защит
type WindowInfo struct {
	PeriodStart string `json:"periodStart"` // YYYY-MM-DD
	PeriodEnd   string `json:"periodEnd"`   // YYYY-MM-DD
}

// SlotInfo кандидаты для одного слота
type SlotInfo struct {
	Rooms      []ResourceInfo `json:"rooms"`
	Professors []ResourceInfo `json:"professors,omitempty"`
}

// ResourceInfo аудитория или профессор в ответе
type ResourceInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Days: make(map[string]map[string]SlotInfo, len(resp.Days)),
	}
	if resp.Window != nil {
		out.Window = &WindowInfo{
			PeriodStart: resp.Window.PeriodStart.Format(domain.DateFormat),
			PeriodEnd:   resp.Window.PeriodEnd.Format(domain.DateFormat),
		}
	}
	for date, slots := range resp.Days {
		day := make(map[string]SlotInfo, len(slots))
		for slotTime, slot := range slots {
			info := SlotInfo{Rooms: make([]ResourceInfo, 0, len(slot.Rooms))}
			for _, room := range slot.Rooms {
				info.Rooms = append(info.Rooms, ResourceInfo{ID: room.ID, Name: room.Name})
			}
			if len(slot.Professors) > 0 {
				info.Professors = make([]ResourceInfo, 0, len(slot.Professors))
				for _, p := range slot.Professors {
					info.Professors = append(info.Professors, ResourceInfo{ID: p.ID, Name: p.Name})
				}
			}
			day[slotTime] = info
		}
		out.Days[date] = day
	}
	return out
}
