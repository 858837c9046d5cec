package payment

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/touseef7878/PRODIGY-FS-03/internal/metrics"
)

var ErrGatewayUnavailable = errors.New("billetera no disponible")

// gateway emula el proveedor externo de pago (JazzCash / EasyPaisa).
// failureRate simula caídas de transporte del proveedor; por defecto es 0,
// así que el resultado del pago lo decide solo la tasa de éxito del simulador.
type gateway struct {
	failureRate float64
	rnd         func() float64
	breaker     *gobreaker.CircuitBreaker
}

func newGateway(failureRate float64, rnd func() float64) *gateway {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wallet-gateway",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CircuitBreakerState.WithLabelValues(name).Set(state)

			log.WithFields(log.Fields{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues("wallet-gateway").Set(0)

	return &gateway{
		failureRate: failureRate,
		rnd:         rnd,
		breaker:     cb,
	}
}

// charge hace el "viaje" al proveedor. Devuelve error solo ante fallas de
// transporte simuladas o breaker abierto; un pago rechazado NO es un error
// del gateway, lo decide el simulador.
func (g *gateway) charge() error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		if g.failureRate > 0 && g.rnd() < g.failureRate {
			return nil, ErrGatewayUnavailable
		}
		return nil, nil
	})
	return err
}
