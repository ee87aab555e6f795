package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionReportUpdated   = "shift_report_updated"
	ActionReportDeleted   = "shift_report_deleted"
	ActionReportSubmitted = "shift_report_submitted"
	ActionLocationCreated = "location_created"
	ActionLocationDeleted = "location_deleted"
	ActionUserRegistered  = "user_registered"

	EntityShiftReport = "shift_report"
	EntityLocation    = "location"
	EntityUser        = "user"
)

const writeTimeout = 5 * time.Second

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists audit events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events on a background worker so request handlers never
// wait on the audit table.
type Dispatcher struct {
	sink   Sink
	log    *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		sink:  sink,
		log:   logger,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "entity", ev.Entity, "error", err)
		}
		cancel()
	}
}

// Dispatch queues ev. When the queue is full or the dispatcher is closed
// the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
