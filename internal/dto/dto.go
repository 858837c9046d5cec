// dto.go
package dto

// AddItemRequest agrega un producto del catálogo al carrito
type AddItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CustomerRequest es el paso 1 del checkout. La completitud real la valida
// la máquina de estados; acá solo se parsea el JSON.
type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ShippingRequest struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentRequest struct {
	Method      string `json:"method"`
	PhoneNumber string `json:"phoneNumber"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}
