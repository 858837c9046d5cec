package checkout

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/touseef7878/PRODIGY-FS-03/internal/cart"
	"github.com/touseef7878/PRODIGY-FS-03/internal/ledger"
	"github.com/touseef7878/PRODIGY-FS-03/internal/metrics"
	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

// Step es el paso actual del checkout. El flujo es lineal, 1 a 5:
// no se avanza sin completar los campos del paso y no se vuelve atrás
// desde el paso 1 ni desde la verificación.
type Step int

const (
	StepCustomerInfo Step = iota + 1
	StepShipping
	StepPaymentMethod
	StepPaymentPending
	StepVerification
)

func (s Step) String() string {
	switch s {
	case StepCustomerInfo:
		return "Customer Info"
	case StepShipping:
		return "Shipping"
	case StepPaymentMethod:
		return "Payment Method"
	case StepPaymentPending:
		return "Complete Payment"
	case StepVerification:
		return "Verification"
	default:
		return "Unknown"
	}
}

// DefaultCountry se usa cuando el cliente no indica país.
const DefaultCountry = "Pakistan"

// Verifier es el contrato del simulador de pago.
type Verifier interface {
	Verify(ctx context.Context, orderID string, draft model.OrderDraft, amount float64) (bool, error)
}

// Result es el desenlace del checkout: la orden final y si el pago
// fue aceptado. Un pago rechazado es un resultado normal, no un error.
type Result struct {
	Success bool        `json:"success"`
	Order   model.Order `json:"order"`
}

// Checkout es la máquina de estados del flujo de compra. Posee el borrador
// de la orden mientras dura el flujo; al resolverse (éxito o fallo) el
// borrador se descarta y la máquina vuelve al paso inicial.
type Checkout struct {
	mu        sync.Mutex
	step      Step
	draft     model.OrderDraft
	verifying bool // guarda de reentrada: un solo Verify en vuelo

	cart     *cart.Cart
	verifier Verifier
	ledger   *ledger.Ledger
	rnd      func() float64
	now      func() time.Time
}

func New(c *cart.Cart, v Verifier, l *ledger.Ledger) *Checkout {
	return &Checkout{
		step:     StepCustomerInfo,
		cart:     c,
		verifier: v,
		ledger:   l,
		rnd:      rand.Float64,
		now:      time.Now,
	}
}

// WithRand reemplaza la fuente de aleatoriedad del trackingId (tests).
func (co *Checkout) WithRand(rnd func() float64) *Checkout {
	co.rnd = rnd
	return co
}

func (co *Checkout) Step() Step {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.step
}

func (co *Checkout) Draft() model.OrderDraft {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.draft
}

// SubmitCustomer completa el paso 1. Requiere los cuatro campos no vacíos;
// si falta alguno no avanza y el borrador queda intacto.
func (co *Checkout) SubmitCustomer(c model.Customer) error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.step != StepCustomerInfo {
		return ErrWrongStep
	}
	if err := firstMissing(map[string]string{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
	}, []string{"firstName", "lastName", "email", "phone"}); err != nil {
		return err
	}

	co.draft.Customer = c
	co.step = StepShipping
	return nil
}

// SubmitShipping completa el paso 2. El país se asume Pakistan si viene vacío.
func (co *Checkout) SubmitShipping(s model.ShippingInfo) error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.step != StepShipping {
		return ErrWrongStep
	}
	if err := firstMissing(map[string]string{
		"address":    s.Address,
		"city":       s.City,
		"postalCode": s.PostalCode,
	}, []string{"address", "city", "postalCode"}); err != nil {
		return err
	}

	if s.Country == "" {
		s.Country = DefaultCountry
	}
	co.draft.Shipping = s
	co.step = StepPaymentMethod
	return nil
}

// SubmitPayment completa el paso 3 ("Proceed to Payment"). Requiere método
// soportado y número de teléfono; es la única transición que deja el pago
// pendiente de confirmación.
func (co *Checkout) SubmitPayment(p model.PaymentInfo) error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.step != StepPaymentMethod {
		return ErrWrongStep
	}
	if p.Method == "" {
		return &ValidationError{Field: "method"}
	}
	if p.Method != model.MethodJazzCash && p.Method != model.MethodEasyPaisa {
		return &ValidationError{Field: "method"}
	}
	if p.PhoneNumber == "" {
		return &ValidationError{Field: "phoneNumber"}
	}

	co.draft.Payment = p
	co.step = StepPaymentPending
	return nil
}

// ConfirmPayment es la única salida del paso 4 ("I've completed the payment").
// No hay timeout: el paso espera la acción del operador.
func (co *Checkout) ConfirmPayment() error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.step != StepPaymentPending {
		return ErrWrongStep
	}
	co.step = StepVerification
	return nil
}

// Previous retrocede un paso. Deshabilitado en el paso 1 y en la
// verificación: una vez iniciada no hay vuelta atrás.
func (co *Checkout) Previous() error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.step == StepCustomerInfo || co.step == StepVerification {
		return ErrNoPrevious
	}
	co.step--
	return nil
}

// Verify dispara la verificación del simulador y resuelve el checkout.
// Congela el snapshot del carrito y el total ANTES de verificar: la orden
// no depende de cambios posteriores del carrito ni del catálogo.
// En éxito registra orden + tracking y vacía el carrito; en rechazo
// registra la orden fallida y preserva el carrito para reintentar.
func (co *Checkout) Verify(ctx context.Context) (*Result, error) {
	co.mu.Lock()
	if co.step != StepVerification {
		co.mu.Unlock()
		return nil, ErrWrongStep
	}
	if co.verifying {
		co.mu.Unlock()
		return nil, ErrVerificationPending
	}

	items := co.cart.Items()
	if len(items) == 0 {
		co.mu.Unlock()
		return nil, ErrEmptyCart
	}

	co.verifying = true
	draft := co.draft
	co.mu.Unlock()

	total := 0.0
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	orderID := strconv.FormatInt(co.now().UnixMilli(), 10)

	success, err := co.verifier.Verify(ctx, orderID, draft, total)
	if err != nil {
		// Abandono o cancelación: se libera la guarda y no queda
		// ninguna orden ni tracking parcial.
		co.mu.Lock()
		co.verifying = false
		co.mu.Unlock()
		return nil, err
	}

	order := model.Order{
		ID:        orderID,
		Items:     items,
		Total:     total,
		Customer:  draft.Customer,
		Shipping:  draft.Shipping,
		Payment:   draft.Payment,
		Status:    model.OrderFailed,
		CreatedAt: co.now(),
	}

	if success {
		order.Status = model.OrderCompleted
		order.TrackingID = co.ledger.NewTrackingID(co.rnd)
	}

	co.ledger.RecordOrder(order)
	metrics.OrdersTotal.WithLabelValues(order.Status).Inc()

	if success {
		if _, err := co.ledger.InitTracking(order); err != nil {
			log.WithFields(log.Fields{
				"orderId": order.ID,
				"error":   err.Error(),
			}).Error("❌ No se pudo inicializar el tracking")
		}
		co.cart.Clear()
	}

	// La máquina se desarma: borrador descartado, vuelve al paso 1
	co.mu.Lock()
	co.draft = model.OrderDraft{}
	co.step = StepCustomerInfo
	co.verifying = false
	co.mu.Unlock()

	return &Result{Success: success, Order: order}, nil
}

// Abandon descarta el borrador sin efectos secundarios. No hace nada si
// hay una verificación en vuelo.
func (co *Checkout) Abandon() error {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.verifying {
		return ErrVerificationPending
	}
	co.draft = model.OrderDraft{}
	co.step = StepCustomerInfo
	return nil
}

// firstMissing devuelve el primer campo vacío en el orden del formulario.
func firstMissing(fields map[string]string, order []string) error {
	for _, name := range order {
		if fields[name] == "" {
			return &ValidationError{Field: name}
		}
	}
	return nil
}
