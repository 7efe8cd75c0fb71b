package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Форматы времени суток.
// canonicalLayout - единственный формат, в котором TimeString хранится внутри сервиса.
// Источники (HTTP, БД) могут присылать как HH:MM, так и HH:MM:SS - нормализуем на границе.
const (
	canonicalLayout = "15:04:05"
	shortLayout     = "15:04"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString время суток в каноничном формате HH:MM:SS.
// Используется для слотов бронирования: дата хранится отдельно (time.Time),
// здесь только время начала/конца. Благодаря фиксированной ширине формата
// лексикографическое сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(canonicalLayout))
}

// NewTimeStringFromString парсит строку времени.
// Принимает форматы HH:MM и HH:MM:SS, всегда возвращает каноничный HH:MM:SS.
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(canonicalLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(shortLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает каноничное представление HH:MM:SS
func (ts TimeString) String() string {
	return string(ts)
}

// Short возвращает время без секунд (HH:MM) - для отображения
func (ts TimeString) Short() string {
	if len(ts) >= len(shortLayout) {
		return string(ts[:len(shortLayout)])
	}
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение находится в каноничном формате
func (ts TimeString) Validate() error {
	if _, err := time.Parse(canonicalLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsBefore проверяет, что время строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за границы суток считается ошибкой - слоты не пересекают полночь.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(canonicalLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(ts), minutes)
	}

	return NewTimeString(shifted), nil
}

// Scan реализует sql.Scanner.
// Postgres-колонки типа time приходят как time.Time, string или []byte -
// все варианты приводим к каноничному формату.
func (ts *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}
