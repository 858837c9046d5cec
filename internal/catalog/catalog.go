package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
)

var ErrNotFound = errors.New("producto no encontrado")

// ListOptions filtra y ordena el listado de productos.
type ListOptions struct {
	Category string
	Search   string
	Sort     string // name | price-low | price-high | rating
}

// Store es el catálogo en memoria. El carrito solo lo lee; las mutaciones
// vienen del panel admin.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	nextID   int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) List(opts ListOptions) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Product
	term := strings.ToLower(opts.Search)
	for _, p := range s.products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}

	switch opts.Sort {
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func (s *Store) Get(id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Create(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = time.Now()
	s.products = append(s.products, p)
	return p
}

func (s *Store) Update(id int64, p model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			p.CreatedAt = s.products[i].CreatedAt
			s.products[i] = p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
