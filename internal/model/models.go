// models.go
package model

import "time"

// Métodos de pago soportados (billeteras móviles)
const (
	MethodJazzCash  = "jazzcash"
	MethodEasyPaisa = "easypaisa"
)

// Estados finales de una orden
const (
	OrderCompleted = "completed"
	OrderFailed    = "failed"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartItem guarda una copia de nombre/precio del catálogo al momento de agregar.
// El precio NO se actualiza si luego cambia el producto.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ShippingInfo struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentInfo struct {
	Method      string `json:"method"`
	PhoneNumber string `json:"phoneNumber"`
}

// OrderDraft es el borrador transitorio del checkout. Se arma paso a paso
// y se descarta al finalizar o abandonar. Nunca se persiste.
type OrderDraft struct {
	Customer Customer     `json:"customer"`
	Shipping ShippingInfo `json:"shipping"`
	Payment  PaymentInfo  `json:"payment"`
}

// Order es inmutable una vez creada. Items y Total quedan congelados
// al momento de la verificación, independientes del carrito.
type Order struct {
	ID         string       `json:"id"`
	Items      []CartItem   `json:"items"`
	Total      float64      `json:"total"`
	Customer   Customer     `json:"customer"`
	Shipping   ShippingInfo `json:"shipping"`
	Payment    PaymentInfo  `json:"payment"`
	Status     string       `json:"status"` // completed | failed
	CreatedAt  time.Time    `json:"createdAt"`
	TrackingID string       `json:"trackingId,omitempty"` // solo si completed
}

type TrackingEvent struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type TrackingRecord struct {
	TrackingID    string          `json:"trackingId"`
	OrderID       string          `json:"orderId"`
	Status        string          `json:"status"` // etapa actual del envío
	Location      string          `json:"location"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	History       []TrackingEvent `json:"history"`
}

// AdminNotification es un evento de auditoría para el panel admin.
// No forma parte de la orden.
type AdminNotification struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	Customer      string    `json:"customer"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PhoneNumber   string    `json:"phoneNumber"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"` // "Payment Successful" | "Payment Failed"
}
