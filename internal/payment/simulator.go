package payment

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/touseef7878/PRODIGY-FS-03/internal/metrics"
	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

// Notifier recibe el evento de auditoría de cada verificación.
// Lo implementa notify.Feed.
type Notifier interface {
	Push(n model.AdminNotification)
}

// Simulator emula la ida y vuelta asíncrona a la billetera móvil:
// una demora fija y un resultado probabilístico (p de éxito configurable,
// 0.7 por defecto). La aleatoriedad y la demora son inyectables para que
// los tests fuercen resultados deterministas.
type Simulator struct {
	delay       time.Duration
	successRate float64
	rnd         func() float64
	gw          *gateway
	notifier    Notifier
}

type Option func(*Simulator)

// WithRand reemplaza la fuente de aleatoriedad (tests).
func WithRand(rnd func() float64) Option {
	return func(s *Simulator) {
		s.rnd = rnd
	}
}

// WithDelay reemplaza la demora simulada de red (tests).
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) {
		s.delay = d
	}
}

func NewSimulator(successRate, gatewayFailureRate float64, delay time.Duration, notifier Notifier, opts ...Option) *Simulator {
	s := &Simulator{
		delay:       delay,
		successRate: successRate,
		rnd:         rand.Float64,
		notifier:    notifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gw = newGateway(gatewayFailureRate, s.rnd)
	return s
}

// Verify simula la verificación del pago. Siempre resuelve a exactamente
// uno de dos resultados: éxito o rechazo. Un error solo ocurre si el
// contexto se cancela antes de resolver (abandono): en ese caso no se
// emite notificación ni queda ningún efecto.
func (s *Simulator) Verify(ctx context.Context, orderID string, draft model.OrderDraft, amount float64) (bool, error) {
	// Demora artificial: modela la latencia del proveedor externo
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	success := s.rnd() < s.successRate

	// Caída de transporte simulada (apagada por defecto). Si el breaker
	// está abierto el pago se trata como rechazado, nunca como pánico.
	if err := s.gw.charge(); err != nil {
		log.WithFields(log.Fields{
			"orderId": orderID,
			"error":   err.Error(),
		}).Warn("Gateway de billetera no disponible, pago rechazado")
		success = false
	}

	status := "Payment Successful"
	if !success {
		status = "Payment Failed"
	}

	// Evento de auditoría para el panel admin, se emita o no la orden
	s.notifier.Push(model.AdminNotification{
		ID:            uuid.New().String(),
		OrderID:       orderID,
		Customer:      draft.Customer.FirstName + " " + draft.Customer.LastName,
		Amount:        amount,
		PaymentMethod: draft.Payment.Method,
		PhoneNumber:   draft.Payment.PhoneNumber,
		Timestamp:     time.Now(),
		Status:        status,
	})
	metrics.NotificationsTotal.WithLabelValues(status).Inc()
	metrics.PaymentAmount.Observe(amount)

	log.WithFields(log.Fields{
		"orderId": orderID,
		"method":  draft.Payment.Method,
		"amount":  amount,
		"success": success,
	}).Info("Verificación de pago resuelta")

	return success, nil
}
