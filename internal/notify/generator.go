package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

// Clientes ficticios para las notificaciones simuladas del panel admin.
var sampleCustomers = []string{"Ahmad Raza", "Fatima Khan", "Usman Ali", "Ayesha Siddiqui"}

// Generator emite notificaciones de pago simuladas a intervalo aleatorio
// (entre min y max), como si otros clientes estuvieran comprando.
// Corre en su propia goroutine, independiente del checkout.
type Generator struct {
	feed *Feed
	min  time.Duration
	max  time.Duration
	rnd  func() float64

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewGenerator(feed *Feed, min, max time.Duration, rnd func() float64) *Generator {
	return &Generator{
		feed: feed,
		min:  min,
		max:  max,
		rnd:  rnd,
		stop: make(chan struct{}),
	}
}

func (g *Generator) Start() {
	g.wg.Add(1)
	go g.loop()
	log.Info("🔔 Generador de notificaciones simuladas iniciado")
}

func (g *Generator) Close() {
	close(g.stop)
	g.wg.Wait()
}

func (g *Generator) loop() {
	defer g.wg.Done()

	for {
		timer := time.NewTimer(g.nextInterval())
		select {
		case <-timer.C:
			// 30% de probabilidad de que "llegue" una notificación
			if g.rnd() > 0.7 {
				g.feed.Push(g.randomNotification())
			}
		case <-g.stop:
			timer.Stop()
			return
		}
	}
}

func (g *Generator) nextInterval() time.Duration {
	spread := g.max - g.min
	if spread <= 0 {
		return g.min
	}
	return g.min + time.Duration(g.rnd()*float64(spread))
}

func (g *Generator) randomNotification() model.AdminNotification {
	method := "JazzCash"
	if g.rnd() > 0.5 {
		method = "EasyPaisa"
	}
	status := "Payment Successful"
	if g.rnd() <= 0.3 {
		status = "Payment Failed"
	}
	return model.AdminNotification{
		ID:            uuid.New().String(),
		OrderID:       fmt.Sprintf("%d", 100000+int(g.rnd()*900000)),
		Customer:      sampleCustomers[int(g.rnd()*float64(len(sampleCustomers)))%len(sampleCustomers)],
		Amount:        float64(1000 + int(g.rnd()*15000)),
		PaymentMethod: method,
		PhoneNumber:   fmt.Sprintf("03%08d", 10000000+int(g.rnd()*90000000)),
		Timestamp:     time.Now(),
		Status:        status,
	}
}
