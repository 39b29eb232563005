package httphandler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
)

type stubShop struct {
	products []domain.Product
	visible  []domain.Product
	cart     []domain.CartItem
	wishlist []domain.Product
	user     *domain.User

	searchQuery   string
	category      string
	loginErr      error
	signupErr     error
	placeOrderErr error
	ordersErr     error
	placedOrder   domain.Order
	storedOrders  []domain.Order
	couponSeen    string
	cleared       bool
	removedID     int
	updatedID     int
	updatedQty    int
}

func (s *stubShop) Products() []domain.Product        { return s.products }
func (s *stubShop) VisibleProducts() []domain.Product { return s.visible }
func (s *stubShop) FilterByCategory(category string)  { s.category = category }
func (s *stubShop) SetSearchQuery(query string)       { s.searchQuery = query }
func (s *stubShop) SearchQuery() string               { return s.searchQuery }

func (s *stubShop) AddToCart(p domain.Product) {
	s.cart = append(s.cart, domain.CartItem{Product: p, Quantity: 1})
}
func (s *stubShop) RemoveFromCart(productID int) { s.removedID = productID }
func (s *stubShop) UpdateCartItemQuantity(productID, quantity int) {
	s.updatedID, s.updatedQty = productID, quantity
}
func (s *stubShop) ClearCart()                { s.cleared = true }
func (s *stubShop) Cart() []domain.CartItem   { return s.cart }
func (s *stubShop) CartTotal() (t float64) {
	for _, ci := range s.cart {
		t += ci.Product.Price * float64(ci.Quantity)
	}
	return t
}
func (s *stubShop) CartItemsCount() (n int) {
	for _, ci := range s.cart {
		n += ci.Quantity
	}
	return n
}

func (s *stubShop) AddToWishlist(p domain.Product) {
	s.wishlist = append(s.wishlist, p)
}
func (s *stubShop) RemoveFromWishlist(productID int) { s.removedID = productID }
func (s *stubShop) Wishlist() []domain.Product       { return s.wishlist }

func (s *stubShop) Login(ctx context.Context, email, password string) error {
	if s.loginErr == nil {
		s.user = &domain.User{ID: "1", Name: "Test", Email: email}
	}
	return s.loginErr
}
func (s *stubShop) Signup(ctx context.Context, name, email, password string) error {
	if s.signupErr == nil {
		s.user = &domain.User{ID: "1", Name: name, Email: email}
	}
	return s.signupErr
}
func (s *stubShop) Logout(ctx context.Context) { s.user = nil }
func (s *stubShop) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}
func (s *stubShop) IsAuthenticated() bool { return s.user != nil }
func (s *stubShop) IsLoading() bool       { return false }

func (s *stubShop) Summary(couponCode string) domain.CheckoutSummary {
	s.couponSeen = couponCode
	subtotal := s.CartTotal()
	return domain.CheckoutSummary{Subtotal: subtotal, Shipping: 40, Total: subtotal + 40}
}
func (s *stubShop) PlaceOrder(
	ctx context.Context, paymentMethod, couponCode string,
) (domain.Order, error) {
	if s.placeOrderErr != nil {
		return domain.Order{}, s.placeOrderErr
	}
	return s.placedOrder, nil
}
func (s *stubShop) Orders(ctx context.Context) ([]domain.Order, error) {
	if s.ordersErr != nil {
		return nil, s.ordersErr
	}
	return s.storedOrders, nil
}

func newServer(shop *stubShop) *httptest.Server {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, shop)
	httphandler.RegisterCart(mux, shop, shop)
	httphandler.RegisterWishlist(mux, shop, shop)
	httphandler.RegisterAuth(mux, shop)
	httphandler.RegisterOrders(mux, shop)
	return httptest.NewServer(httphandler.AllowJSON(mux))
}

func product(id int, title string, price float64) domain.Product {
	return domain.Product{ID: id, Title: title, Price: price, Category: "laptops"}
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return res
}

func TestGetProducts(t *testing.T) {
	t.Run("ReturnsVisibleProducts", func(t *testing.T) {
		shop := &stubShop{visible: []domain.Product{product(1, "MacBook Air", 1199)}}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/products")
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		var got []httphandler.Product
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "MacBook Air", got[0].Title)
	})

	t.Run("AppliesSearchQuery", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/products?q=macbook")
		require.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, "macbook", shop.searchQuery)
	})

	t.Run("AppliesCategoryFilter", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/products?category=laptops")
		require.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, "laptops", shop.category)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("AddKnownProduct", func(t *testing.T) {
		shop := &stubShop{products: []domain.Product{product(3, "MacBook Air", 1199)}}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/cart", `{"product_id":3}`)
		res.Body.Close()

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		require.Len(t, shop.cart, 1)
		assert.Equal(t, 3, shop.cart[0].Product.ID)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/cart", `{"product_id":99}`)
		res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Empty(t, shop.cart)
	})

	t.Run("GetCartView", func(t *testing.T) {
		shop := &stubShop{cart: []domain.CartItem{
			{Product: product(1, "iPhone 13", 799), Quantity: 2},
		}}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/cart")
		require.NoError(t, err)
		defer res.Body.Close()

		var view httphandler.CartView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
		assert.Equal(t, 1598.0, view.Total)
		assert.Equal(t, 2, view.ItemsCount)
		require.Len(t, view.Items, 1)
	})

	t.Run("UpdateQuantity", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/5", `{"quantity":4}`)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 5, shop.updatedID)
		assert.Equal(t, 4, shop.updatedQty)
	})

	t.Run("RemoveItem", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodDelete, srv.URL+"/v1/cart/7", "")
		res.Body.Close()

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Equal(t, 7, shop.removedID)
	})

	t.Run("ClearCart", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodDelete, srv.URL+"/v1/cart", "")
		res.Body.Close()

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.True(t, shop.cleared)
	})

	t.Run("InvalidProductIDPath", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodDelete, srv.URL+"/v1/cart/abc", "")
		res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestWishlistEndpoints(t *testing.T) {
	t.Run("AddAndList", func(t *testing.T) {
		shop := &stubShop{products: []domain.Product{product(6, "Sony WH-1000XM4", 349)}}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/wishlist", `{"product_id":6}`)
		res.Body.Close()
		require.Equal(t, http.StatusCreated, res.StatusCode)

		res, err := http.Get(srv.URL + "/v1/wishlist")
		require.NoError(t, err)
		defer res.Body.Close()

		var got []httphandler.Product
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, 6, got[0].ID)
	})

	t.Run("RemoveItem", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodDelete, srv.URL+"/v1/wishlist/6", "")
		res.Body.Close()

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Equal(t, 6, shop.removedID)
	})
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("LoginReturnsSession", func(t *testing.T) {
		shop := &stubShop{}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login",
			`{"email":"user@example.com","password":"pw"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		var view httphandler.SessionView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
		assert.True(t, view.Authenticated)
		require.NotNil(t, view.User)
		assert.Equal(t, "user@example.com", view.User.Email)
	})

	t.Run("LoginFailureIsUnauthorized", func(t *testing.T) {
		shop := &stubShop{loginErr: fmt.Errorf("backend refused")}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login",
			`{"email":"user@example.com","password":"pw"}`)
		res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("LogoutClearsSession", func(t *testing.T) {
		shop := &stubShop{user: &domain.User{ID: "1"}}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/logout", "")
		res.Body.Close()
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		res, err := http.Get(srv.URL + "/v1/auth/session")
		require.NoError(t, err)
		defer res.Body.Close()

		var view httphandler.SessionView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
		assert.False(t, view.Authenticated)
		assert.Nil(t, view.User)
	})
}

func TestOrdersEndpoints(t *testing.T) {
	t.Run("SummaryPassesCoupon", func(t *testing.T) {
		shop := &stubShop{cart: []domain.CartItem{
			{Product: product(1, "iPhone 13", 799), Quantity: 1},
		}}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/checkout/summary?coupon=SAVE10")
		require.NoError(t, err)
		defer res.Body.Close()

		var view httphandler.SummaryView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
		assert.Equal(t, "SAVE10", shop.couponSeen)
		assert.Equal(t, 799.0, view.Subtotal)
	})

	t.Run("PlaceOrderCreated", func(t *testing.T) {
		shop := &stubShop{placedOrder: domain.Order{ID: "OD123456789", Total: 839}}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/orders",
			`{"payment_method":"card"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		var got httphandler.Order
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, "OD123456789", got.ID)
	})

	t.Run("PlaceOrderRequiresAuth", func(t *testing.T) {
		shop := &stubShop{placeOrderErr: domain.ErrNotAuthenticated}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/orders", `{}`)
		res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("PlaceOrderEmptyCartConflicts", func(t *testing.T) {
		shop := &stubShop{placeOrderErr: domain.ErrEmptyCart}
		srv := newServer(shop)
		defer srv.Close()

		res := doJSON(t, http.MethodPost, srv.URL+"/v1/orders", `{}`)
		res.Body.Close()

		assert.Equal(t, http.StatusConflict, res.StatusCode)
	})

	t.Run("ListOrders", func(t *testing.T) {
		shop := &stubShop{storedOrders: []domain.Order{{ID: "OD000000001"}}}
		srv := newServer(shop)
		defer srv.Close()

		res, err := http.Get(srv.URL + "/v1/orders")
		require.NoError(t, err)
		defer res.Body.Close()

		var got []httphandler.Order
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "OD000000001", got[0].ID)
	})
}

func TestAllowJSON(t *testing.T) {
	shop := &stubShop{}
	srv := newServer(shop)
	defer srv.Close()

	req, err := http.NewRequest(
		http.MethodPost, srv.URL+"/v1/cart", strings.NewReader(`{"product_id":1}`),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}
