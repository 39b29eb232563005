package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogViewer = (*Shop)(nil)
var _ port.CartManager = (*Shop)(nil)
var _ port.WishlistManager = (*Shop)(nil)
var _ port.Authenticator = (*Shop)(nil)
var _ port.OrderPlacer = (*Shop)(nil)

const guestClientID = "guest"

// A Shop is the single source of truth for the catalog view, cart,
// wishlist and session. The catalog is immutable for the process
// lifetime; all other state is owned exclusively by the Shop.
//
// Mutations serialize on the internal mutex, so concurrent consumers
// observe them in caller order.
type Shop struct {
	mu        sync.Mutex
	notifier  port.Notifier
	snapshots port.SnapshotStorage
	auth      port.AuthProvider
	events    port.ShopEventsProducer
	orders    port.OrdersStorage

	products []domain.Product
	visible  []domain.Product
	cart     []domain.CartItem
	wishlist []domain.Product
	user     *domain.User
	query    string
	loading  bool
}

func New(
	catalog []domain.Product,
	notifier port.Notifier,
	snapshots port.SnapshotStorage,
	auth port.AuthProvider,
	events port.ShopEventsProducer,
	orders port.OrdersStorage,
) *Shop {
	return &Shop{
		notifier:  notifier,
		snapshots: snapshots,
		auth:      auth,
		events:    events,
		orders:    orders,
		products:  catalog,
		visible:   catalog,
	}
}

// Restore loads the persisted cart, wishlist and session snapshots.
// Missing or malformed snapshots leave the corresponding state at its
// default and are never surfaced as errors.
func (s *Shop) Restore(ctx context.Context) {
	const op = "Shop.Restore"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, err := s.snapshots.ReadCart(ctx); err != nil {
		log.Warn("cart snapshot unreadable, using empty cart", "err", err)
	} else {
		s.cart = cart
	}

	if wishlist, err := s.snapshots.ReadWishlist(ctx); err != nil {
		log.Warn("wishlist snapshot unreadable, using empty wishlist", "err", err)
	} else {
		s.wishlist = wishlist
	}

	u, ok, err := s.snapshots.ReadSession(ctx)
	if err != nil {
		log.Warn("session snapshot unreadable, staying unauthenticated", "err", err)
		return
	}
	if ok {
		s.user = &u
	}
}

func (s *Shop) Products() []domain.Product {
	return s.products
}

func (s *Shop) VisibleProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Shop) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// FilterByCategory makes products of the given category visible.
// The "all" sentinel restores the full catalog. An empty result is valid.
func (s *Shop) FilterByCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == domain.CategoryAll {
		s.visible = s.products
		return
	}

	visible := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			visible = append(visible, p)
		}
	}
	s.visible = visible
}

// SetSearchQuery stores the raw query and recomputes the visible set as
// the products whose title, description, category or brand contains the
// lowercased query. A blank query restores the full catalog.
//
// Search and category are independent axes: the latest applied filter
// wins, there is no combined filtering.
func (s *Shop) SetSearchQuery(query string) {
	s.mu.Lock()

	s.query = query

	if strings.TrimSpace(query) == "" {
		s.visible = s.products
		s.mu.Unlock()
		return
	}

	q := strings.ToLower(query)
	visible := make([]domain.Product, 0)
	for _, p := range s.products {
		if containsFold(p.Title, q) ||
			containsFold(p.Description, q) ||
			containsFold(p.Category, q) ||
			containsFold(p.Brand, q) {
			visible = append(visible, p)
		}
	}
	s.visible = visible
	s.mu.Unlock()

	s.emit(domain.ShopEvent{Kind: domain.EventSearch, Query: query})
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

func (s *Shop) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

func (s *Shop) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.wishlist...)
}

// AddToCart increments the quantity of an existing entry or appends a
// new entry with quantity 1. No upper bound is enforced here, stock
// limits belong to the presentation layer.
func (s *Shop) AddToCart(p domain.Product) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, domain.CartItem{Product: p, Quantity: 1})
	}
	s.mu.Unlock()

	s.syncCart()
	s.notifier.Notify(domain.NoticeSuccess, fmt.Sprintf("%s added to cart", p.Title))
	s.emit(domain.ShopEvent{Kind: domain.EventCartAdd, ProductID: p.ID})
}

func (s *Shop) RemoveFromCart(productID int) {
	s.mu.Lock()
	cart := s.cart[:0]
	for _, item := range s.cart {
		if item.Product.ID != productID {
			cart = append(cart, item)
		}
	}
	s.cart = cart
	s.mu.Unlock()

	s.syncCart()
	s.notifier.Notify(domain.NoticeInfo, "Item removed from cart")
	s.emit(domain.ShopEvent{Kind: domain.EventCartRemove, ProductID: productID})
}

// UpdateCartItemQuantity sets the entry quantity. A quantity of zero or
// less behaves as RemoveFromCart. Absent entries are a no-op.
func (s *Shop) UpdateCartItemQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.syncCart()
}

func (s *Shop) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.syncCart()
	s.notifier.Notify(domain.NoticeInfo, "Cart cleared")
	s.emit(domain.ShopEvent{Kind: domain.EventCartClear})
}

func (s *Shop) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s *Shop) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// AddToWishlist has set semantics: a product already present is left
// untouched and no notification is emitted.
func (s *Shop) AddToWishlist(p domain.Product) {
	s.mu.Lock()
	for _, wp := range s.wishlist {
		if wp.ID == p.ID {
			s.mu.Unlock()
			return
		}
	}
	s.wishlist = append(s.wishlist, p)
	s.mu.Unlock()

	s.syncWishlist()
	s.notifier.Notify(domain.NoticeSuccess, fmt.Sprintf("%s added to wishlist", p.Title))
	s.emit(domain.ShopEvent{Kind: domain.EventWishlistAdd, ProductID: p.ID})
}

func (s *Shop) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	wishlist := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID != productID {
			wishlist = append(wishlist, p)
		}
	}
	s.wishlist = wishlist
	s.mu.Unlock()

	s.syncWishlist()
	s.notifier.Notify(domain.NoticeInfo, "Item removed from wishlist")
	s.emit(domain.ShopEvent{Kind: domain.EventWishlistRemove, ProductID: productID})
}

// Login authenticates against the auth backend and installs the session
// identity the backend returns. The loading flag is restored regardless
// of the outcome.
func (s *Shop) Login(ctx context.Context, email, password string) error {
	const op = "Shop.Login"

	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.notifier.Notify(domain.NoticeError, authFailureMessage(err, "Login failed"))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.setUser(u)
	s.syncSession(u)
	s.notifier.Notify(domain.NoticeSuccess, "Logged in successfully")
	s.emit(domain.ShopEvent{Kind: domain.EventLogin})
	return nil
}

// Signup registers a new account and installs the returned identity.
func (s *Shop) Signup(ctx context.Context, name, email, password string) error {
	const op = "Shop.Signup"

	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		s.notifier.Notify(domain.NoticeError, authFailureMessage(err, "Signup failed"))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.setUser(u)
	s.syncSession(u)
	s.notifier.Notify(domain.NoticeSuccess, "Account created successfully")
	s.emit(domain.ShopEvent{Kind: domain.EventSignup})
	return nil
}

// Logout clears the session and deletes the persisted session snapshot,
// so a later Restore does not resurrect the identity.
func (s *Shop) Logout(ctx context.Context) {
	const op = "Shop.Logout"
	log := slog.With("op", op)

	s.emit(domain.ShopEvent{Kind: domain.EventLogout})

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.snapshots.DeleteSession(ctx); err != nil {
		log.Error("failed to delete session snapshot", "err", err)
	}
	s.notifier.Notify(domain.NoticeInfo, "Logged out successfully")
}

func (s *Shop) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Shop) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

func (s *Shop) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Shop) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Shop) setUser(u domain.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

func (s *Shop) clientID() string {
	if u, ok := s.User(); ok {
		return u.ID
	}
	return guestClientID
}

// Snapshot writes and event production are fire-and-forget: failures
// are logged and never interrupt a mutation.

func (s *Shop) syncCart() {
	const op = "Shop.syncCart"
	if err := s.snapshots.WriteCart(context.Background(), s.Cart()); err != nil {
		slog.Error("failed to write cart snapshot", "op", op, "err", err)
	}
}

func (s *Shop) syncWishlist() {
	const op = "Shop.syncWishlist"
	if err := s.snapshots.WriteWishlist(context.Background(), s.Wishlist()); err != nil {
		slog.Error("failed to write wishlist snapshot", "op", op, "err", err)
	}
}

func (s *Shop) syncSession(u domain.User) {
	const op = "Shop.syncSession"
	if err := s.snapshots.WriteSession(context.Background(), u); err != nil {
		slog.Error("failed to write session snapshot", "op", op, "err", err)
	}
}

func (s *Shop) emit(evt domain.ShopEvent) {
	const op = "Shop.emit"

	if s.events == nil {
		return
	}

	evt.ClientID = s.clientID()
	evt.At = time.Now().UTC()
	if err := s.events.ProduceEvent(context.Background(), evt); err != nil {
		slog.Error("failed to produce shop event", "op", op, "kind", evt.Kind, "err", err)
	}
}

func authFailureMessage(err error, fallback string) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return fallback
}
