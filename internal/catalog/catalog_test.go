package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

func TestStore_Seed(t *testing.T) {
	s := NewStore()
	s.Seed()

	all := s.List(ListOptions{})
	assert.Len(t, all, 6)

	// Seed es idempotente
	s.Seed()
	assert.Len(t, s.List(ListOptions{}), 6)
}

func TestStore_ListFilters(t *testing.T) {
	s := NewStore()
	s.Seed()

	electronics := s.List(ListOptions{Category: "Electronics"})
	require.Len(t, electronics, 2)
	for _, p := range electronics {
		assert.Equal(t, "Electronics", p.Category)
	}

	// Búsqueda sin distinción de mayúsculas sobre nombre y descripción
	got := s.List(ListOptions{Search: "COFFEE"})
	require.Len(t, got, 1)
	assert.Equal(t, "Artisan Coffee Beans", got[0].Name)

	assert.Empty(t, s.List(ListOptions{Search: "zzz"}))
}

func TestStore_ListSorts(t *testing.T) {
	s := NewStore()
	s.Seed()

	byPrice := s.List(ListOptions{Sort: "price-low"})
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	byPriceDesc := s.List(ListOptions{Sort: "price-high"})
	assert.Equal(t, "Smart Fitness Watch", byPriceDesc[0].Name)

	byRating := s.List(ListOptions{Sort: "rating"})
	assert.Equal(t, "Artisan Coffee Beans", byRating[0].Name)

	// Orden por defecto: nombre
	byName := s.List(ListOptions{})
	for i := 1; i < len(byName); i++ {
		assert.LessOrEqual(t, byName[i-1].Name, byName[i].Name)
	}
}

func TestStore_CRUD(t *testing.T) {
	s := NewStore()

	created := s.Create(model.Product{Name: "Mug", Price: 499, Category: "Home"})
	require.NotZero(t, created.ID)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Name)

	updated, err := s.Update(created.ID, model.Product{Name: "Big Mug", Price: 599, Category: "Home"})
	require.NoError(t, err)
	assert.Equal(t, "Big Mug", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, s.Delete(created.ID))
	_, err = s.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Update(42, model.Product{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(42), ErrNotFound)
}

func TestStore_Categories(t *testing.T) {
	s := NewStore()
	s.Seed()

	cats := s.Categories()
	assert.ElementsMatch(t, []string{"Electronics", "Clothing", "Food", "Accessories", "Home"}, cats)
}
