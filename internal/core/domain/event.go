package domain

import "time"

type EventKind string

const (
	EventCartAdd        EventKind = "cart_add"
	EventCartRemove     EventKind = "cart_remove"
	EventCartClear      EventKind = "cart_clear"
	EventWishlistAdd    EventKind = "wishlist_add"
	EventWishlistRemove EventKind = "wishlist_remove"
	EventSearch         EventKind = "search"
	EventLogin          EventKind = "login"
	EventSignup         EventKind = "signup"
	EventLogout         EventKind = "logout"
	EventOrderPlaced    EventKind = "order_placed"
)

// A ShopEvent describes a single client interaction with the store.
type ShopEvent struct {
	ClientID  string
	Kind      EventKind
	ProductID int
	Query     string
	At        time.Time
}
