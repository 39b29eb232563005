package httphandler

import "time"

type (
	Product struct {
		ID                 int      `json:"id"`
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		Brand              string   `json:"brand"`
		Category           string   `json:"category"`
		Price              float64  `json:"price"`
		DiscountPercentage float64  `json:"discountPercentage,omitempty"`
		Rating             float64  `json:"rating,omitempty"`
		Stock              int      `json:"stock,omitempty"`
		Thumbnail          string   `json:"thumbnail"`
		Images             []string `json:"images"`
	}

	CartItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	CartView struct {
		Items      []CartItem `json:"items"`
		Total      float64    `json:"total"`
		ItemsCount int        `json:"itemsCount"`
	}

	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	SessionView struct {
		Authenticated bool  `json:"authenticated"`
		User          *User `json:"user,omitempty"`
	}

	OrderItem struct {
		ProductID int     `json:"product_id"`
		Title     string  `json:"title"`
		UnitPrice float64 `json:"unit_price"`
		Quantity  int     `json:"quantity"`
		Thumbnail string  `json:"thumbnail"`
	}

	Order struct {
		ID            string      `json:"id"`
		Items         []OrderItem `json:"items"`
		Subtotal      float64     `json:"subtotal"`
		Discount      float64     `json:"discount"`
		Shipping      float64     `json:"shipping"`
		Total         float64     `json:"total"`
		Status        string      `json:"status"`
		PaymentMethod string      `json:"payment_method"`
		CreatedAt     time.Time   `json:"created_at"`
	}

	ActivityView struct {
		ClientID string `json:"client_id"`
		Events   int64  `json:"events"`
	}

	SummaryView struct {
		Subtotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Shipping float64 `json:"shipping"`
		Total    float64 `json:"total"`
	}
)

type (
	AddItemRequest struct {
		ProductID int `json:"product_id"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	SignupRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	PlaceOrderRequest struct {
		PaymentMethod string `json:"payment_method"`
		CouponCode    string `json:"coupon_code"`
	}
)
