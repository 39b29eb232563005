package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")
)

// An AuthError carries the failure message returned by the auth
// backend, so it can be surfaced to the user verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

type (
	Product struct {
		ID                 int
		Title              string
		Description        string
		Brand              string
		Category           string
		Price              float64
		DiscountPercentage float64
		Rating             float64
		Stock              int
		Thumbnail          string
		Images             []string
	}

	CartItem struct {
		Product  Product
		Quantity int
	}

	User struct {
		ID    string
		Name  string
		Email string
	}
)

// CategoryAll is the sentinel category restoring the full catalog.
const CategoryAll = "all"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)
