package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда почтовый API отклонил письмо
	ErrSendFailed = errors.New("mailer client: failed to send email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
