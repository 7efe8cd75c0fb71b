package domain

import "errors"

// Размер комиссии защиты - ровно два читателя
const CommitteeSize = 2

// Форматы даты
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Дефолтная сетка слотов (09:00-17:00 с шагом час), если не задана в конфиге
const (
	DefaultDayStart    = "09:00:00"
	DefaultDayEnd      = "17:00:00"
	DefaultSlotMinutes = 60
)

var (
	// ErrInvalidOwnerType возвращается при неизвестном типе владельца слота
	ErrInvalidOwnerType = errors.New("domain: invalid availability owner type")

	// ErrInvalidSlotTimes возвращается, когда end_time не позже start_time
	ErrInvalidSlotTimes = errors.New("domain: slot end_time must be after start_time")
)
