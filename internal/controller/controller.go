package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/touseef7878/PRODIGY-FS-03/internal/catalog"
	"github.com/touseef7878/PRODIGY-FS-03/internal/dto"
	"github.com/touseef7878/PRODIGY-FS-03/internal/ledger"
	"github.com/touseef7878/PRODIGY-FS-03/internal/metrics"
	"github.com/touseef7878/PRODIGY-FS-03/internal/model"
	"github.com/touseef7878/PRODIGY-FS-03/internal/notify"
)

type StoreController struct {
	Catalog *catalog.Store
	Ledger  *ledger.Ledger
	Feed    *notify.Feed
}

func NewStoreController(cat *catalog.Store, led *ledger.Ledger, feed *notify.Feed) *StoreController {
	return &StoreController{Catalog: cat, Ledger: led, Feed: feed}
}

// GET /api/products — listado con filtros opcionales (category, search, sort)
func (ctl *StoreController) GetProducts(c *gin.Context) {
	products := ctl.Catalog.List(catalog.ListOptions{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GET /api/products/:id
func (ctl *StoreController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	p, err := ctl.Catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

// POST /api/products — admin only
func (ctl *StoreController) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := ctl.Catalog.Create(model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
	})
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": p})
}

// PUT /api/products/:id — admin only
func (ctl *StoreController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.Catalog.Update(id, model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

// DELETE /api/products/:id — admin only
func (ctl *StoreController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := ctl.Catalog.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}

// GET /api/categories
func (ctl *StoreController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": ctl.Catalog.Categories()})
}

// GET /api/orders — admin only. ?q= filtra por trackingId, nombre o id.
func (ctl *StoreController) GetOrders(c *gin.Context) {
	orders := ctl.Ledger.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GET /api/orders/:id
func (ctl *StoreController) GetOrder(c *gin.Context) {
	o, err := ctl.Ledger.FindOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

// GET /api/track/:trackingId — consulta pública de envío
func (ctl *StoreController) TrackOrder(c *gin.Context) {
	rec, err := ctl.Ledger.Lookup(c.Param("trackingId"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tracking": rec})
}

// POST /api/admin/tracking/:trackingId/advance — admin only.
// Acción manual del operador; en la etapa terminal es un no-op.
func (ctl *StoreController) AdvanceTracking(c *gin.Context) {
	rec, err := ctl.Ledger.Advance(c.Param("trackingId"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.TrackingAdvancesTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "tracking": rec})
}

// GET /api/admin/notifications — admin only
func (ctl *StoreController) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": ctl.Feed.Recent()})
}

// GET /api/health
func (ctl *StoreController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "LocalStore API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
