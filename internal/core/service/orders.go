package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	couponCodeSave10 = "SAVE10"
	couponRate       = 0.1
	freeShippingOver = 500
	shippingFee      = 40
)

// Summary computes the checkout totals for the current cart. The
// subtotal is undiscounted, matching CartTotal; the SAVE10 coupon takes
// 10% off the subtotal, shipping is free above 500 and 40 otherwise.
func (s *Shop) Summary(couponCode string) domain.CheckoutSummary {
	subtotal := s.CartTotal()

	var discount float64
	if couponCode == couponCodeSave10 {
		discount = math.Round(subtotal * couponRate)
	}

	var shipping float64
	if subtotal <= freeShippingOver {
		shipping = shippingFee
	}

	return domain.CheckoutSummary{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal - discount + shipping,
	}
}

// PlaceOrder persists the current cart as an order for the session user
// and clears the cart. It requires an authenticated session and a
// non-empty cart.
func (s *Shop) PlaceOrder(
	ctx context.Context, paymentMethod, couponCode string,
) (domain.Order, error) {
	const op = "Shop.PlaceOrder"

	u, ok := s.User()
	if !ok {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	cart := s.Cart()
	if len(cart) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	summary := s.Summary(couponCode)

	order := domain.Order{
		ID:            newOrderID(),
		UserID:        u.ID,
		Items:         toOrderItems(cart),
		Subtotal:      summary.Subtotal,
		Discount:      summary.Discount,
		Shipping:      summary.Shipping,
		Total:         summary.Total,
		Status:        domain.OrderProcessing,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		s.notifier.Notify(domain.NoticeError, "Failed to place order")
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.ClearCart()
	s.notifier.Notify(domain.NoticeSuccess, fmt.Sprintf("Order %s placed", order.ID))
	s.emit(domain.ShopEvent{Kind: domain.EventOrderPlaced})

	return order, nil
}

// Orders lists the session user's orders, newest first.
func (s *Shop) Orders(ctx context.Context) ([]domain.Order, error) {
	const op = "Shop.Orders"

	u, ok := s.User()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	orders, err := s.orders.OrdersByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func toOrderItems(cart []domain.CartItem) []domain.OrderItem {
	items := make([]domain.OrderItem, len(cart))
	for i, ci := range cart {
		items[i] = domain.OrderItem{
			ProductID: ci.Product.ID,
			Title:     ci.Product.Title,
			UnitPrice: ci.Product.Price,
			Quantity:  ci.Quantity,
			Thumbnail: ci.Product.Thumbnail,
		}
	}
	return items
}

func newOrderID() string {
	const digits = "0123456789"
	b := make([]byte, 9)
	for i := range b {
		b[i] = digits[rand.IntN(len(digits))]
	}
	return "OD" + string(b)
}
