// internal/core/ports/notifier.go
package ports

import (
	"context"
	"fmt"
	"time"
)

// Notifier es el port para notificaciones de progreso.
// La entrega es best-effort y como mucho una vez por evento; un Notifier lento
// pierde eventos en lugar de frenar el escaneo.
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error

	// Close cierra el notifier y libera recursos
	Close() error
}

// Event representa un evento de progreso.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Source fuente o hostname relacionado (opcional)
	Source string

	// Target dominio objetivo
	Target string

	// Count contador asociado (hostnames hallados, resueltos...)
	Count int

	// Address dirección resuelta en host.resolved
	Address string

	// Duration duración de la unidad de trabajo completada
	Duration time.Duration
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	// Scan events
	EventTypeScanStarted   EventType = "scan.started"
	EventTypeScanCompleted EventType = "scan.completed"
	EventTypeScanCanceled  EventType = "scan.canceled"

	// Source events
	EventTypeSourceStarted   EventType = "source.started"
	EventTypeSourceCompleted EventType = "source.completed"

	// Resolve events
	EventTypeResolveStarted   EventType = "resolve.started"
	EventTypeHostResolved     EventType = "host.resolved"
	EventTypeResolveCompleted EventType = "resolve.completed"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, source string, count int) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Count:     count,
	}
}

// Message retorna una línea de estado legible para el evento.
func (e Event) Message() string {
	switch e.Type {
	case EventTypeScanStarted:
		return fmt.Sprintf("scanning %s with %d sources", e.Target, e.Count)
	case EventTypeSourceStarted:
		return fmt.Sprintf("[%s] searching", e.Source)
	case EventTypeSourceCompleted:
		return fmt.Sprintf("[%s] found %d subdomains", e.Source, e.Count)
	case EventTypeScanCompleted:
		return fmt.Sprintf("found %d unique subdomains", e.Count)
	case EventTypeScanCanceled:
		return fmt.Sprintf("scan canceled with %d subdomains collected", e.Count)
	case EventTypeResolveStarted:
		return fmt.Sprintf("resolving %d hosts", e.Count)
	case EventTypeHostResolved:
		return fmt.Sprintf("%s -> %s", e.Source, e.Address)
	case EventTypeResolveCompleted:
		return fmt.Sprintf("resolved %d hosts", e.Count)
	default:
		return string(e.Type)
	}
}
