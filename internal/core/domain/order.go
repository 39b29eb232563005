package domain

import "time"

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
)

type (
	Order struct {
		ID            string
		UserID        string
		Items         []OrderItem
		Subtotal      float64
		Discount      float64
		Shipping      float64
		Total         float64
		Status        OrderStatus
		PaymentMethod string
		CreatedAt     time.Time
	}

	OrderItem struct {
		ProductID int
		Title     string
		UnitPrice float64
		Quantity  int
		Thumbnail string
	}

	CheckoutSummary struct {
		Subtotal float64
		Discount float64
		Shipping float64
		Total    float64
	}
)
