package book_defense

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе
	// (пустые поля, не два различных читателя). Побочных эффектов нет.
	ErrInvalidInput = errors.New("book_defense: invalid input data")

	// ErrRoomNotFound возвращается, когда выбранная аудитория не существует
	ErrRoomNotFound = errors.New("book_defense: room not found")

	// ErrProfessorNotFound возвращается, когда хотя бы один из читателей не существует
	ErrProfessorNotFound = errors.New("book_defense: professor not found")

	// ErrAlreadyBooked возвращается, когда у студента уже есть защита
	ErrAlreadyBooked = errors.New("book_defense: student already has a defense")

	// ErrSlotTaken возвращается при проигрыше гонки за (room, date, time):
	// слот заняли между выбором и подтверждением
	ErrSlotTaken = errors.New("book_defense: slot has just been taken")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("book_defense: internal error")
)
