package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room аудитория для проведения защит.
// Имя уникально без учета регистра.
type Room struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Professor профессор-читатель. Email уникален.
type Professor struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Student студент. Создается лениво при первом бронировании (upsert по email).
type Student struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
