package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touseef7878/PRODIGY-FS-03/internal/catalog"
	"github.com/touseef7878/PRODIGY-FS-03/internal/ledger"
	"github.com/touseef7878/PRODIGY-FS-03/internal/middleware"
	"github.com/touseef7878/PRODIGY-FS-03/internal/notify"
	"github.com/touseef7878/PRODIGY-FS-03/internal/payment"
	"github.com/touseef7878/PRODIGY-FS-03/internal/session"
)

const adminToken = "admin123"

// setupRouter arma el router como main, con el simulador forzado a éxito
// y sin demora.
func setupRouter(t *testing.T) (*gin.Engine, *ledger.Ledger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.NewStore()
	cat.Seed()
	led := ledger.New()
	feed := notify.NewFeed(time.Hour)

	sim := payment.NewSimulator(0.7, 0, 0, feed,
		payment.WithRand(func() float64 { return 0.1 }),
		payment.WithDelay(0),
	)
	sessions := session.NewManager(sim, led)

	store := NewStoreController(cat, led, feed)
	shop := NewCheckoutController(cat, sessions)

	r := gin.New()
	r.GET("/api/health", store.Health)
	r.GET("/api/products", store.GetProducts)
	r.GET("/api/products/:id", store.GetProduct)
	r.GET("/api/categories", store.GetCategories)
	r.GET("/api/orders/:id", store.GetOrder)
	r.GET("/api/track/:trackingId", store.TrackOrder)

	shopRoutes := r.Group("/api")
	shopRoutes.Use(middleware.WithSession(sessions))
	shopRoutes.GET("/cart", shop.GetCart)
	shopRoutes.POST("/cart/items", shop.AddItem)
	shopRoutes.PATCH("/cart/items/:productId", shop.SetQuantity)
	shopRoutes.DELETE("/cart/items/:productId", shop.RemoveItem)
	shopRoutes.DELETE("/cart", shop.ClearCart)
	shopRoutes.GET("/checkout", shop.GetCheckout)
	shopRoutes.POST("/checkout/customer", shop.SubmitCustomer)
	shopRoutes.POST("/checkout/shipping", shop.SubmitShipping)
	shopRoutes.POST("/checkout/payment", shop.SubmitPayment)
	shopRoutes.POST("/checkout/confirm", shop.ConfirmPayment)
	shopRoutes.POST("/checkout/previous", shop.Previous)
	shopRoutes.POST("/checkout/verify", shop.Verify)
	shopRoutes.DELETE("/checkout", shop.Abandon)

	admin := r.Group("/api")
	admin.Use(middleware.AdminOnly(adminToken))
	admin.POST("/products", store.CreateProduct)
	admin.PUT("/products/:id", store.UpdateProduct)
	admin.DELETE("/products/:id", store.DeleteProduct)
	admin.GET("/orders", store.GetOrders)
	admin.POST("/admin/tracking/:trackingId/advance", store.AdvanceTracking)
	admin.GET("/admin/notifications", store.GetNotifications)

	return r, led
}

func do(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)
	w := do(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProducts(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["products"], 6)

	w = do(t, r, http.MethodGet, "/api/products?category=Electronics", "", nil)
	body = decode(t, w)
	assert.Len(t, body["products"], 2)

	w = do(t, r, http.MethodGet, "/api/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminGate(t *testing.T) {
	r, _ := setupRouter(t)

	// Sin token: prohibido
	w := do(t, r, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Con token: ok
	w = do(t, r, http.MethodGet, "/api/orders", "", map[string]string{"X-Admin-Token": adminToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductCRUDAsAdmin(t *testing.T) {
	r, _ := setupRouter(t)
	auth := map[string]string{"X-Admin-Token": adminToken}

	w := do(t, r, http.MethodPost, "/api/products",
		`{"name":"Mug","description":"A mug","price":499,"image":"img","category":"Home","stock":5}`, auth)
	require.Equal(t, http.StatusCreated, w.Code)

	// Validación del binding: precio requerido
	w = do(t, r, http.MethodPost, "/api/products", `{"name":"Broken"}`, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSessionFlow(t *testing.T) {
	r, _ := setupRouter(t)

	// El primer request crea la sesión y devuelve el id en el header
	w := do(t, r, http.MethodPost, "/api/cart/items", `{"productId":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, sid)

	headers := map[string]string{"X-Session-ID": sid}
	w = do(t, r, http.MethodPost, "/api/cart/items", `{"productId":1}`, headers)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 2.0, body["totalItems"])

	// Otra sesión no ve ese carrito
	w = do(t, r, http.MethodGet, "/api/cart", "", nil)
	body = decode(t, w)
	assert.Equal(t, 0.0, body["totalItems"])

	// Producto inexistente
	w = do(t, r, http.MethodPost, "/api/cart/items", `{"productId":999}`, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFullCheckoutFlowOverHTTP(t *testing.T) {
	r, led := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/cart/items", `{"productId":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	headers := map[string]string{"X-Session-ID": w.Header().Get("X-Session-ID")}

	// Paso 1 incompleto: 400 y la máquina no avanza
	w = do(t, r, http.MethodPost, "/api/checkout/customer",
		`{"firstName":"Ali","lastName":"Hassan","phone":"0300"}`, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/customer",
		`{"firstName":"Ali","lastName":"Hassan","email":"ali@example.com","phone":"03001234567"}`, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/shipping",
		`{"address":"House 12","city":"Lahore","postalCode":"54000"}`, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/payment",
		`{"method":"jazzcash","phoneNumber":"03001234567"}`, headers)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 4.0, body["step"])

	// Fuera de orden: confirmar dos veces da conflicto
	w = do(t, r, http.MethodPost, "/api/checkout/confirm", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/checkout/confirm", "", headers)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/verify", "", headers)
	require.Equal(t, http.StatusCreated, w.Code)
	body = decode(t, w)
	require.Equal(t, true, body["success"])

	order := body["order"].(map[string]interface{})
	trackingID := order["trackingId"].(string)
	assert.Regexp(t, `^TRK\d{6}$`, trackingID)
	assert.Equal(t, "completed", order["status"])

	// El carrito quedó vacío
	w = do(t, r, http.MethodGet, "/api/cart", "", headers)
	body = decode(t, w)
	assert.Equal(t, 0.0, body["totalItems"])

	// Tracking consultable públicamente y avanzable por el admin
	w = do(t, r, http.MethodGet, "/api/track/"+trackingID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tracking := decode(t, w)["tracking"].(map[string]interface{})
	assert.Equal(t, "Order Placed", tracking["status"])

	w = do(t, r, http.MethodPost, "/api/admin/tracking/"+trackingID+"/advance", "",
		map[string]string{"X-Admin-Token": adminToken})
	require.Equal(t, http.StatusOK, w.Code)
	tracking = decode(t, w)["tracking"].(map[string]interface{})
	assert.Equal(t, "Processing", tracking["status"])

	// La orden quedó en el ledger y la auditoría en el feed del admin
	require.Len(t, led.Orders(), 1)
	w = do(t, r, http.MethodGet, "/api/admin/notifications", "",
		map[string]string{"X-Admin-Token": adminToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["notifications"], 1)
}

func TestTrackNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/track/TRK000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvanceUnknownTracking(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/admin/tracking/TRK000000/advance", "",
		map[string]string{"X-Admin-Token": adminToken})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
