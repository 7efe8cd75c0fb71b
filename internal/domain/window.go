package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefenseWindow административно заданный диапазон дат (включительно),
// внутри которого могут назначаться защиты. Активно всегда одно окно -
// самое свежее по created_at.
type DefenseWindow struct {
	ID          uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}

// Contains проверяет, что дата попадает в окно (границы включительно)
func (w *DefenseWindow) Contains(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(w.PeriodStart)) && !d.After(truncateToDate(w.PeriodEnd))
}

// Days количество дней в окне, границы включительно
func (w *DefenseWindow) Days() int {
	start := truncateToDate(w.PeriodStart)
	end := truncateToDate(w.PeriodEnd)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
