package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touseef7878/PRODIGY-FS-03/internal/catalog"
	"github.com/touseef7878/PRODIGY-FS-03/internal/checkout"
	"github.com/touseef7878/PRODIGY-FS-03/internal/dto"
	"github.com/touseef7878/PRODIGY-FS-03/internal/middleware"
	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
	"github.com/touseef7878/PRODIGY-FS-03/internal/session"
)

// CheckoutController atiende carrito y checkout de la sesión actual
// (puesta en el contexto por middleware.WithSession).
type CheckoutController struct {
	Catalog  *catalog.Store
	Sessions *session.Manager
}

func NewCheckoutController(cat *catalog.Store, mgr *session.Manager) *CheckoutController {
	return &CheckoutController{Catalog: cat, Sessions: mgr}
}

func cartResponse(s *session.Session) gin.H {
	return gin.H{
		"success":    true,
		"items":      s.Cart.Items(),
		"totalItems": s.Cart.TotalItems(),
		"totalPrice": s.Cart.TotalPrice(),
	}
}

// GET /api/cart
func (ctl *CheckoutController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(middleware.CurrentSession(c)))
}

// POST /api/cart/items — agrega una unidad del producto
func (ctl *CheckoutController) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.Catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	s := middleware.CurrentSession(c)
	s.Cart.Add(*p)
	c.JSON(http.StatusOK, cartResponse(s))
}

// PATCH /api/cart/items/:productId — fija la cantidad (0 elimina)
func (ctl *CheckoutController) SetQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.CurrentSession(c)
	s.Cart.SetQuantity(productID, *req.Quantity)
	c.JSON(http.StatusOK, cartResponse(s))
}

// DELETE /api/cart/items/:productId
func (ctl *CheckoutController) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	s := middleware.CurrentSession(c)
	s.Cart.Remove(productID)
	c.JSON(http.StatusOK, cartResponse(s))
}

// DELETE /api/cart
func (ctl *CheckoutController) ClearCart(c *gin.Context) {
	s := middleware.CurrentSession(c)
	s.Cart.Clear()
	c.JSON(http.StatusOK, cartResponse(s))
}

func checkoutState(s *session.Session) gin.H {
	step := s.Checkout.Step()
	state := gin.H{
		"success":   true,
		"step":      int(step),
		"stepTitle": step.String(),
		"draft":     s.Checkout.Draft(),
	}
	if step == checkout.StepPaymentPending {
		state["instructions"] = checkout.PaymentInstructions(s.Checkout.Draft().Payment.Method)
	}
	return state
}

// GET /api/checkout — estado actual de la máquina
func (ctl *CheckoutController) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, checkoutState(middleware.CurrentSession(c)))
}

// checkoutError mapea errores de la máquina a códigos HTTP.
func checkoutError(c *gin.Context, err error) {
	status := http.StatusConflict
	if checkout.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// POST /api/checkout/customer — paso 1
func (ctl *CheckoutController) SubmitCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.CurrentSession(c)
	err := s.Checkout.SubmitCustomer(model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutState(s))
}

// POST /api/checkout/shipping — paso 2
func (ctl *CheckoutController) SubmitShipping(c *gin.Context) {
	var req dto.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.CurrentSession(c)
	err := s.Checkout.SubmitShipping(model.ShippingInfo{
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutState(s))
}

// POST /api/checkout/payment — paso 3, "Proceed to Payment"
func (ctl *CheckoutController) SubmitPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.CurrentSession(c)
	err := s.Checkout.SubmitPayment(model.PaymentInfo{
		Method:      req.Method,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutState(s))
}

// POST /api/checkout/confirm — paso 4, "I've completed the payment"
func (ctl *CheckoutController) ConfirmPayment(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if err := s.Checkout.ConfirmPayment(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutState(s))
}

// POST /api/checkout/previous
func (ctl *CheckoutController) Previous(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if err := s.Checkout.Previous(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutState(s))
}

// POST /api/checkout/verify — paso 5. Bloquea hasta que el simulador
// resuelva; un segundo intento en paralelo recibe 409.
func (ctl *CheckoutController) Verify(c *gin.Context) {
	s := middleware.CurrentSession(c)
	result, err := s.Checkout.Verify(c.Request.Context())
	if err != nil {
		checkoutError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"success": result.Success,
		"order":   result.Order,
	})
}

// DELETE /api/checkout — abandono: descarta el borrador sin efectos
func (ctl *CheckoutController) Abandon(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if err := s.Checkout.Abandon(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "checkout abandoned"})
}
