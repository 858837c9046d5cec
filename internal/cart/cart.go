package cart

import (
	"sync"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

// Cart mantiene los ítems de una sesión. Todas las operaciones son totales:
// no hay condiciones de error, el estado siempre queda consistente.
// El mutex existe porque el facade HTTP puede tocar la misma sesión
// desde más de un request.
type Cart struct {
	mu    sync.RWMutex
	items []model.CartItem // orden de inserción
}

func New() *Cart {
	return &Cart{}
}

// Add suma 1 si el producto ya está, sino lo inserta con cantidad 1.
// Copia id/nombre/precio/imagen del catálogo: el precio queda congelado
// en el carrito aunque el producto cambie después.
func (c *Cart) Add(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, model.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity fija la cantidad, acotada a max(0, qty).
// Cantidad 0 elimina el ítem: nunca se guardan ítems con cantidad <= 0.
func (c *Cart) SetQuantity(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Clear vacía el carrito. Se invoca luego de una orden exitosa.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0.0
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Items devuelve una copia; el snapshot de una orden no debe compartir
// memoria con el carrito vivo.
func (c *Cart) Items() []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}
