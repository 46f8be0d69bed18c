// internal/core/usecases/dispatcher.go
package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
)

const (
	// notificationTimeout acota cada llamada a Notify
	notificationTimeout = 5 * time.Second

	// drainTimeout acota la espera de Close por eventos pendientes
	drainTimeout = 5 * time.Second

	defaultEventBuffer = 256
)

// Dispatcher entrega eventos de progreso a los observers sin bloquear el escaneo.
// Cada observer tiene su propia cola y goroutine, así que recibe los eventos en
// el orden en que se publicaron. Si la cola está llena el evento se descarta.
type Dispatcher struct {
	logger logx.Logger
	sinks  []*eventSink

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type eventSink struct {
	notifier ports.Notifier
	ch       chan ports.Event
	dropped  atomic.Int64
}

// NewDispatcher arranca una goroutine de entrega por observer.
func NewDispatcher(observers []ports.Notifier, buffer int, logger logx.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	if logger == nil {
		logger = logx.Discard()
	}

	d := &Dispatcher{logger: logger.With("component", "dispatcher")}
	for _, n := range observers {
		if n == nil {
			continue
		}
		s := &eventSink{notifier: n, ch: make(chan ports.Event, buffer)}
		d.sinks = append(d.sinks, s)

		d.wg.Add(1)
		go d.deliver(s)
	}
	return d
}

// deliver consume la cola de un observer hasta que se cierra.
func (d *Dispatcher) deliver(s *eventSink) {
	defer d.wg.Done()
	for event := range s.ch {
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		err := d.notify(ctx, s.notifier, event)
		cancel()
		if err != nil {
			d.logger.Warn("notification failed", "event_type", event.Type, "error", err.Error())
		}
	}
}

func (d *Dispatcher) notify(ctx context.Context, n ports.Notifier, event ports.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("notifier panicked", "event_type", event.Type, "panic", r)
		}
	}()
	return n.Notify(ctx, event)
}

// Publish encola event para todos los observers. Nunca bloquea; tras Close es un no-op.
func (d *Dispatcher) Publish(event ports.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	for _, s := range d.sinks {
		select {
		case s.ch <- event:
		default:
			if s.dropped.Add(1) == 1 {
				d.logger.Debug("observer queue full, dropping events", "event_type", event.Type)
			}
		}
	}
}

// Dropped retorna el total de eventos descartados por colas llenas.
func (d *Dispatcher) Dropped() int64 {
	var total int64
	for _, s := range d.sinks {
		total += s.dropped.Load()
	}
	return total
}

// Close deja de aceptar eventos y espera, como mucho drainTimeout, a que
// los observers consuman lo pendiente. Es idempotente.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	for _, s := range d.sinks {
		close(s.ch)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(drainTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		d.logger.Warn("observers did not drain in time", "timeout", drainTimeout)
	}
	return nil
}
