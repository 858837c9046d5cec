package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

var ErrNotFound = errors.New("tracking no encontrado")

// Errores de negocio exportados (los usa el controller)
var (
	ErrNotCompleted      = errors.New("solo las órdenes completadas tienen tracking")
	ErrTrackingExists    = errors.New("el tracking ya fue inicializado previamente")
	ErrMissingTrackingID = errors.New("la orden no tiene trackingId")
)

// Etapas del ciclo de vida del envío, en orden fijo. No se saltean
// ni se repiten; "Delivered" es terminal.
type stage struct {
	Status      string
	Location    string
	Description string
}

var stages = []stage{
	{"Order Placed", "Processing Center", "Your order has been placed and is being processed."},
	{"Processing", "Warehouse", "Your order is being processed in our warehouse."},
	{"Shipped", "Distribution Center", "Your order has been shipped and is on its way."},
	{"In Transit", "Transit Hub", "Your order is in transit to your location."},
	{"Out for Delivery", "Local Delivery Center", "Your order is out for delivery."},
	{"Delivered", "Delivered to Customer", "Your order has been successfully delivered."},
}

func stageIndex(status string) int {
	for i, s := range stages {
		if s.Status == status {
			return i
		}
	}
	return -1
}

// Ledger es el registro append-only de órdenes finalizadas y sus trackings.
// Vive en memoria: todo el "backend" es simulado localmente.
type Ledger struct {
	mu       sync.RWMutex
	orders   []model.Order
	tracking map[string]*model.TrackingRecord

	now func() time.Time // inyectable para tests
}

func New() *Ledger {
	return &Ledger{
		tracking: make(map[string]*model.TrackingRecord),
		now:      time.Now,
	}
}

// RecordOrder agrega la orden al historial. Solo append; las órdenes
// nunca se modifican ni se borran.
func (l *Ledger) RecordOrder(o model.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, o)
}

// InitTracking crea el registro de envío para una orden completada,
// sembrado en la primera etapa con un historial de una sola entrada.
func (l *Ledger) InitTracking(o model.Order) (*model.TrackingRecord, error) {
	if o.Status != model.OrderCompleted {
		return nil, ErrNotCompleted
	}
	if o.TrackingID == "" {
		return nil, ErrMissingTrackingID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tracking[o.TrackingID]; ok {
		return nil, ErrTrackingExists
	}

	now := l.now()
	first := stages[0]
	rec := &model.TrackingRecord{
		TrackingID:    o.TrackingID,
		OrderID:       o.ID,
		Status:        first.Status,
		Location:      first.Location,
		LastUpdatedAt: now,
		History: []model.TrackingEvent{
			{
				Status:      first.Status,
				Location:    first.Location,
				Timestamp:   now,
				Description: first.Description,
			},
		},
	}
	l.tracking[o.TrackingID] = rec
	return copyRecord(rec), nil
}

// Advance mueve el tracking a la siguiente etapa y agrega una entrada al
// historial. En la etapa terminal es un no-op: devuelve el registro sin tocar.
// Las entradas previas del historial nunca se mutan.
func (l *Ledger) Advance(trackingID string) (*model.TrackingRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.tracking[trackingID]
	if !ok {
		return nil, ErrNotFound
	}

	idx := stageIndex(rec.Status)
	if idx < 0 || idx >= len(stages)-1 {
		return copyRecord(rec), nil // ya entregado
	}

	next := stages[idx+1]
	now := l.now()
	rec.Status = next.Status
	rec.Location = next.Location
	rec.LastUpdatedAt = now
	rec.History = append(rec.History, model.TrackingEvent{
		Status:      next.Status,
		Location:    next.Location,
		Timestamp:   now,
		Description: next.Description,
	})
	return copyRecord(rec), nil
}

func (l *Ledger) Lookup(trackingID string) (*model.TrackingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.tracking[trackingID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(rec), nil
}

func (l *Ledger) Orders() []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) FindOrder(id string) (*model.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			o := l.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// Search filtra órdenes por substring del trackingId, nombre completo del
// cliente o substring del id numérico. Sin distinción de mayúsculas.
// Query vacía devuelve todas las órdenes.
func (l *Ledger) Search(query string) []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if query == "" {
		out := make([]model.Order, len(l.orders))
		copy(out, l.orders)
		return out
	}

	term := strings.ToLower(query)
	var out []model.Order
	for _, o := range l.orders {
		fullName := strings.ToLower(o.Customer.FirstName + " " + o.Customer.LastName)
		switch {
		case o.TrackingID != "" && strings.Contains(strings.ToLower(o.TrackingID), term):
			out = append(out, o)
		case strings.Contains(fullName, term):
			out = append(out, o)
		case strings.Contains(o.ID, term):
			out = append(out, o)
		}
	}
	return out
}

// NewTrackingID genera un id TRK + 6 dígitos, único entre los trackings
// existentes. randFn devuelve un float en [0,1) (inyectable).
func (l *Ledger) NewTrackingID(randFn func() float64) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for {
		id := fmt.Sprintf("TRK%06d", 100000+int(randFn()*900000))
		if _, ok := l.tracking[id]; !ok {
			return id
		}
	}
}

// copyRecord devuelve una copia profunda; el historial interno no debe
// poder mutarse desde afuera.
func copyRecord(rec *model.TrackingRecord) *model.TrackingRecord {
	out := *rec
	out.History = make([]model.TrackingEvent, len(rec.History))
	copy(out.History, rec.History)
	return &out
}
