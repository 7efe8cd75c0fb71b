package mailer

// Message письмо для отправки через почтовый API
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки почтового API
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
