// seed.go
package catalog

import "github.com/touseef7878/PRODIGY-FS-03/internal/model"

// Seed carga los productos de muestra si el catálogo está vacío.
func (s *Store) Seed() {
	s.mu.Lock()
	empty := len(s.products) == 0
	s.mu.Unlock()
	if !empty {
		return
	}

	samples := []model.Product{
		{
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
			Price:       8999.0,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Stock:       15,
			Rating:      4.5,
			Reviews:     128,
		},
		{
			Name:        "Organic Cotton T-Shirt",
			Description: "Soft and comfortable organic cotton t-shirt available in multiple colors.",
			Price:       1299.0,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			Category:    "Clothing",
			Stock:       32,
			Rating:      4.2,
			Reviews:     85,
		},
		{
			Name:        "Smart Fitness Watch",
			Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring.",
			Price:       12999.0,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Stock:       8,
			Rating:      4.7,
			Reviews:     203,
		},
		{
			Name:        "Artisan Coffee Beans",
			Description: "Premium roasted coffee beans sourced from the finest plantations.",
			Price:       1599.0,
			Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=400&fit=crop",
			Category:    "Food",
			Stock:       24,
			Rating:      4.8,
			Reviews:     167,
		},
		{
			Name:        "Minimalist Backpack",
			Description: "Sleek and functional backpack perfect for work, travel, and everyday use.",
			Price:       3999.0,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			Category:    "Accessories",
			Stock:       18,
			Rating:      4.4,
			Reviews:     94,
		},
		{
			Name:        "Ceramic Plant Pot",
			Description: "Beautiful handcrafted ceramic pot perfect for your indoor plants.",
			Price:       899.0,
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=400&h=400&fit=crop",
			Category:    "Home",
			Stock:       45,
			Rating:      4.3,
			Reviews:     76,
		},
	}

	for _, p := range samples {
		s.Create(p)
	}
}
