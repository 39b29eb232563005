package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

func strconvPathValue(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Brand:              p.Brand,
		Category:           p.Category,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	}
}

func toProducts(ps []domain.Product) []Product {
	products := make([]Product, len(ps))
	for i, p := range ps {
		products[i] = toProduct(p)
	}
	return products
}

func findProduct(ps []domain.Product, productID int) (domain.Product, bool) {
	for _, p := range ps {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// GET v1/products?category=name|q=text (response 200 OK, 400 Bad request)

type CatalogHandler struct {
	catalog port.CatalogViewer
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogViewer) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("q") {
		h.catalog.SetSearchQuery(query.Get("q"))
	} else if query.Has("category") {
		h.catalog.FilterByCategory(query.Get("category"))
	}

	writeJSON(w, http.StatusOK, toProducts(h.catalog.VisibleProducts()))
}

// GET v1/cart (200 OK)
// POST v1/cart JSON {"product_id" int} (201 Created, 400, 404)
// PATCH v1/cart/{productID} JSON {"quantity" int} (200 OK, 400)
// DELETE v1/cart/{productID} (204 No content)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	cart    port.CartManager
	catalog port.CatalogViewer
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartManager, catalog port.CatalogViewer,
) {
	h := CartHandler{cart, catalog}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/{productID}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/{productID}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Cart()
	view := CartView{
		Items:      make([]CartItem, len(items)),
		Total:      h.cart.CartTotal(),
		ItemsCount: h.cart.CartItemsCount(),
	}
	for i, ci := range items {
		view.Items[i] = CartItem{toProduct(ci.Product), ci.Quantity}
	}
	writeJSON(w, http.StatusOK, view)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, ok := findProduct(h.catalog.Products(), req.ProductID)
	if !ok {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}

	h.cart.AddToCart(p)
	w.WriteHeader(http.StatusCreated)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	productID, err := strconvPathValue(r, "productID")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.UpdateCartItemQuantity(productID, req.Quantity)
	w.WriteHeader(http.StatusOK)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconvPathValue(r, "productID")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.cart.RemoveFromCart(productID)
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.cart.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

// GET v1/wishlist (200 OK)
// POST v1/wishlist JSON {"product_id" int} (201 Created, 400, 404)
// DELETE v1/wishlist/{productID} (204 No content)

type WishlistHandler struct {
	wishlist port.WishlistManager
	catalog  port.CatalogViewer
}

func RegisterWishlist(
	mux *http.ServeMux, wishlist port.WishlistManager, catalog port.CatalogViewer,
) {
	h := WishlistHandler{wishlist, catalog}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist", h.PostItem)
	mux.HandleFunc("DELETE /v1/wishlist/{productID}", h.DeleteItem)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProducts(h.wishlist.Wishlist()))
}

func (h WishlistHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, ok := findProduct(h.catalog.Products(), req.ProductID)
	if !ok {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}

	h.wishlist.AddToWishlist(p)
	w.WriteHeader(http.StatusCreated)
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconvPathValue(r, "productID")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.wishlist.RemoveFromWishlist(productID)
	w.WriteHeader(http.StatusNoContent)
}

// POST v1/auth/login JSON {"email", "password"} (200 OK, 400, 401)
// POST v1/auth/signup JSON {"name", "email", "password"} (200 OK, 400, 401)
// POST v1/auth/logout (204 No content)
// GET v1/auth/session (200 OK)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(mux *http.ServeMux, auth port.Authenticator) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.HandleFunc("POST /v1/auth/signup", h.PostSignup)
	mux.HandleFunc("POST /v1/auth/logout", h.PostLogout)
	mux.HandleFunc("GET /v1/auth/session", h.GetSession)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.auth.Login(r.Context(), req.Email, req.Password); err != nil {
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	h.GetSession(w, r)
}

func (h AuthHandler) PostSignup(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostSignup"
	log := slog.With("op", op)

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		http.Error(w, "signup failed", http.StatusUnauthorized)
		return
	}

	h.GetSession(w, r)
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view := SessionView{Authenticated: h.auth.IsAuthenticated()}
	if u, ok := h.auth.User(); ok {
		view.User = &User{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	writeJSON(w, http.StatusOK, view)
}

// GET v1/checkout/summary?coupon=code (200 OK)
// POST v1/orders JSON {"payment_method", "coupon_code"} (201 Created, 400, 401, 409)
// GET v1/orders (200 OK, 401)

type OrdersHandler struct {
	orders port.OrderPlacer
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderPlacer) {
	h := OrdersHandler{orders}
	mux.HandleFunc("GET /v1/checkout/summary", h.GetSummary)
	mux.HandleFunc("POST /v1/orders", h.PostOrder)
	mux.HandleFunc("GET /v1/orders", h.GetOrders)
}

func (h OrdersHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := h.orders.Summary(r.URL.Query().Get("coupon"))
	writeJSON(w, http.StatusOK, SummaryView{
		Subtotal: s.Subtotal,
		Discount: s.Discount,
		Shipping: s.Shipping,
		Total:    s.Total,
	})
}

func (h OrdersHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrder"
	log := slog.With("op", op)

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), req.PaymentMethod, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			http.Error(w, "authentication required", http.StatusUnauthorized)
		case errors.Is(err, domain.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		default:
			http.Error(
				w, "failed to place order", http.StatusServiceUnavailable,
			)
			log.Error("failed to place order", "err", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toOrder(order))
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"
	log := slog.With("op", op)

	orders, err := h.orders.Orders(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to list orders", http.StatusServiceUnavailable)
		log.Error("failed to list orders", "err", err)
		return
	}

	views := make([]Order, len(orders))
	for i, o := range orders {
		views[i] = toOrder(o)
	}
	writeJSON(w, http.StatusOK, views)
}

// GET v1/activity/{clientID} (200 OK, 503)

type ActivityHandler struct {
	activity port.ActivityReader
}

func RegisterActivity(mux *http.ServeMux, activity port.ActivityReader) {
	h := ActivityHandler{activity}
	mux.HandleFunc("GET /v1/activity/{clientID}", h.GetActivity)
}

func (h ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	const op = "ActivityHandler.GetActivity"
	log := slog.With("op", op)

	clientID := r.PathValue("clientID")
	events, err := h.activity.EventsFor(clientID)
	if err != nil {
		http.Error(w, "activity is unavailable", http.StatusServiceUnavailable)
		log.Error("failed to read activity", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, ActivityView{ClientID: clientID, Events: events})
}

func toOrder(o domain.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Thumbnail: it.Thumbnail,
		}
	}
	return Order{
		ID:            o.ID,
		Items:         items,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Shipping:      o.Shipping,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}
