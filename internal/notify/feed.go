package notify

import (
	"sync"
	"time"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

// maxNotifications es cuántas notificaciones retiene el feed.
const maxNotifications = 10

// Feed retiene las últimas notificaciones admin, más reciente primero.
// Las notificaciones expiran tras un tiempo fijo de exhibición y se
// filtran al leer; nunca bloquea al emisor.
type Feed struct {
	mu    sync.RWMutex
	items []model.AdminNotification
	ttl   time.Duration

	now func() time.Time
}

func NewFeed(ttl time.Duration) *Feed {
	return &Feed{
		ttl: ttl,
		now: time.Now,
	}
}

// Push agrega al frente y recorta a las últimas 10.
func (f *Feed) Push(n model.AdminNotification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]model.AdminNotification{n}, f.items...)
	if len(f.items) > maxNotifications {
		f.items = f.items[:maxNotifications]
	}
}

// Recent devuelve las notificaciones no expiradas, más reciente primero.
func (f *Feed) Recent() []model.AdminNotification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	cutoff := f.now().Add(-f.ttl)
	var out []model.AdminNotification
	for _, n := range f.items {
		if n.Timestamp.After(cutoff) {
			out = append(out, n)
		}
	}
	return out
}
