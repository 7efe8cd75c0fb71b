// Package notify асинхронная отправка подтверждений бронирования.
//
// Координатор бронирования кладет уведомление в очередь и сразу возвращает
// результат клиенту: задержки и сбои почты никогда не влияют на само
// бронирование. Переполнение очереди и ошибки доставки только логируются.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-DefenseService/internal/integrations/mailer"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

const sendTimeout = 30 * time.Second

// MailSender интерфейс отправки писем
type MailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ProfessorContact контакт профессора-читателя
type ProfessorContact struct {
	Name  string
	Email string
}

// BookingNotification данные подтверждения бронирования:
// письма уходят студенту и обоим читателям
type BookingNotification struct {
	StudentName  string
	StudentEmail string
	Professors   []ProfessorContact
	Date         time.Time
	Time         types.TimeString
	RoomName     string
}

// Dispatcher очередь исходящих уведомлений с одним воркером
type Dispatcher struct {
	sender MailSender
	queue  chan BookingNotification
	log    Logger
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер и запускает воркер
func NewDispatcher(sender MailSender, queueSize int, log Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan BookingNotification, queueSize),
		log:    log,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// EnqueueBooking ставит уведомление в очередь.
// Никогда не блокирует вызывающего: при переполненной очереди уведомление
// отбрасывается с записью в лог.
func (d *Dispatcher) EnqueueBooking(n BookingNotification) {
	select {
	case d.queue <- n:
	default:
		d.log.Warn("notify: queue full, dropping booking notification for student=%s", n.StudentEmail)
	}
}

// Close останавливает диспетчер, дождавшись отправки уже поставленных
// в очередь уведомлений
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for n := range d.queue {
		d.send(n)
	}
}

func (d *Dispatcher) send(n BookingNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	for _, msg := range buildBookingMessages(n) {
		if err := d.sender.Send(ctx, msg); err != nil {
			d.log.Error("notify: failed to send booking email to=%s: %v", msg.To, err)
		}
	}
}
