package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

func product(id int64, price float64) model.Product {
	return model.Product{ID: id, Name: "P", Price: price, Image: "img"}
}

func TestCart_Add_NewAndExisting(t *testing.T) {
	c := New()

	c.Add(product(1, 1000))
	c.Add(product(1, 1000))
	c.Add(product(2, 500))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestCart_TotalPrice(t *testing.T) {
	c := New()

	c.Add(product(1, 1000))
	c.SetQuantity(1, 2)
	c.Add(product(2, 500))

	// 1000*2 + 500*1
	assert.Equal(t, 2500.0, c.TotalPrice())
}

func TestCart_SetQuantity_Clamps(t *testing.T) {
	c := New()
	c.Add(product(1, 100))

	c.SetQuantity(1, -5)

	// Cantidad negativa se acota a 0 y el ítem se elimina
	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestCart_SetQuantity_ZeroRemoves(t *testing.T) {
	c := New()
	c.Add(product(1, 100))
	c.Add(product(2, 200))

	c.SetQuantity(1, 0)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestCart_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, 100))

	c.SetQuantity(99, 5)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(product(1, 100))
	c.Add(product(2, 200))

	c.Remove(1)
	c.Remove(99) // no-op

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(product(1, 100))
	c.Add(product(2, 200))

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

// El total siempre es Σ(precio×cantidad) y ninguna cantidad queda <= 0,
// para cualquier secuencia de operaciones.
func TestCart_InvariantsAfterMixedSequence(t *testing.T) {
	c := New()

	c.Add(product(1, 1000))
	c.Add(product(2, 500))
	c.Add(product(3, 250))
	c.SetQuantity(1, 4)
	c.SetQuantity(2, -1)
	c.Remove(3)
	c.Add(product(2, 500))
	c.SetQuantity(1, 2)

	expected := 0.0
	for _, it := range c.Items() {
		require.Greater(t, it.Quantity, 0)
		expected += it.UnitPrice * float64(it.Quantity)
	}
	assert.Equal(t, expected, c.TotalPrice())
	assert.Equal(t, 2500.0, c.TotalPrice()) // 1000*2 + 500*1
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(product(1, 100))

	snapshot := c.Items()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_FrozenPriceOnAdd(t *testing.T) {
	c := New()
	p := product(1, 100)
	c.Add(p)

	// Un cambio posterior del catálogo no afecta al carrito
	p.Price = 900
	c.Add(p)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 100.0, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
}
