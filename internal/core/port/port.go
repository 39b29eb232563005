package port

import (
	"context"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// Inbound ports, implemented by the core service.

type CatalogViewer interface {
	Products() []domain.Product
	VisibleProducts() []domain.Product
	FilterByCategory(category string)
	SetSearchQuery(query string)
	SearchQuery() string
}

type CartManager interface {
	AddToCart(p domain.Product)
	RemoveFromCart(productID int)
	UpdateCartItemQuantity(productID, quantity int)
	ClearCart()
	Cart() []domain.CartItem
	CartTotal() float64
	CartItemsCount() int
}

type WishlistManager interface {
	AddToWishlist(p domain.Product)
	RemoveFromWishlist(productID int)
	Wishlist() []domain.Product
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	User() (domain.User, bool)
	IsAuthenticated() bool
	IsLoading() bool
}

type OrderPlacer interface {
	Summary(couponCode string) domain.CheckoutSummary
	PlaceOrder(ctx context.Context, paymentMethod, couponCode string) (domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}

// Outbound ports, implemented by adapters.

type Notifier interface {
	Notify(kind domain.NoticeKind, message string)
}

type SnapshotStorage interface {
	ReadCart(ctx context.Context) ([]domain.CartItem, error)
	WriteCart(ctx context.Context, items []domain.CartItem) error
	ReadWishlist(ctx context.Context) ([]domain.Product, error)
	WriteWishlist(ctx context.Context, ps []domain.Product) error
	ReadSession(ctx context.Context) (domain.User, bool, error)
	WriteSession(ctx context.Context, u domain.User) error
	DeleteSession(ctx context.Context) error
}

type AuthProvider interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, name, email, password string) (domain.User, error)
}

type ShopEventsProducer interface {
	ProduceEvent(ctx context.Context, evt domain.ShopEvent) error
}

type OrdersStorage interface {
	StoreOrder(ctx context.Context, o domain.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type ActivityProcessor interface {
	runnerContextWg
	closer
}

type ActivityReader interface {
	EventsFor(clientID string) (int64, error)
}
