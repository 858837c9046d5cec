package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/touseef7878/PRODIGY-FS-03/internal/cart"
	"github.com/touseef7878/PRODIGY-FS-03/internal/checkout"
	"github.com/touseef7878/PRODIGY-FS-03/internal/ledger"
)

// Session es el contexto explícito de una visita: un carrito y a lo sumo
// un checkout en curso. Nada de estado global ambiente.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Checkout *checkout.Checkout
}

// Manager crea y desmonta sesiones. Cada sesión comparte el ledger y el
// verificador globales pero posee su propio carrito y borrador.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	verifier checkout.Verifier
	ledger   *ledger.Ledger
}

func NewManager(v checkout.Verifier, l *ledger.Ledger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		verifier: v,
		ledger:   l,
	}
}

// Get devuelve la sesión pedida, creándola si no existe. Con id vacío
// genera una nueva.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	} else {
		id = uuid.New().String()
	}

	c := cart.New()
	s := &Session{
		ID:       id,
		Cart:     c,
		Checkout: checkout.New(c, m.verifier, m.ledger),
	}
	m.sessions[id] = s
	return s
}

// End descarta la sesión completa (carrito y borrador). Si hay una
// verificación en vuelo la sesión queda hasta que resuelva.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if err := s.Checkout.Abandon(); err != nil {
		return err
	}
	delete(m.sessions, id)
	return nil
}
