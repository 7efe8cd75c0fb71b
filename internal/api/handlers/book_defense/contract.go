package book_defense

import (
	"context"

	bookDefense "github.com/m04kA/SMC-DefenseService/internal/usecase/book_defense"
)

type BookDefenseUseCase interface {
	Execute(ctx context.Context, req *bookDefense.Request) (*bookDefense.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
