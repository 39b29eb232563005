// Package snapshot persists the store's cart, wishlist and session as
// JSON snapshots in Redis under fixed keys.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/redis/go-redis/v9"
)

var _ port.SnapshotStorage = (*Storage)(nil)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
	sessionKey  = "session"
)

type (
	productSnapshot struct {
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

	cartItemSnapshot struct {
		Product  productSnapshot `json:"product"`
		Quantity int             `json:"quantity"`
	}

	userSnapshot struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)

type Storage struct {
	cl *redis.Client
}

func New(ctx context.Context, redisURL string) (Storage, error) {
	const op = "snapshot.New"
	log := slog.With("op", op)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return Storage{}, fmt.Errorf("%s: %w", op, err)
	}

	cl := redis.NewClient(opts)

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LineareBackoff(200 * time.Millisecond),
	}
	err = retry.Do(ctx, retryCfg, func() error {
		return cl.Ping(ctx).Err()
	})
	if err != nil {
		return Storage{}, fmt.Errorf("%s: snapshot storage is unavailable: %w", op, err)
	}

	log.Info("snapshot storage is available")
	return Storage{cl}, nil
}

func (s Storage) Close() {
	const op = "Storage.Close"
	log := slog.With("op", op)

	if err := s.cl.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("snapshot storage is closed")
}

func (s Storage) ReadCart(ctx context.Context) ([]domain.CartItem, error) {
	const op = "Storage.ReadCart"

	data, err := s.read(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if data == nil {
		return nil, nil
	}

	items, err := decodeCart(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s Storage) WriteCart(ctx context.Context, items []domain.CartItem) error {
	const op = "Storage.WriteCart"

	vs := make([]cartItemSnapshot, len(items))
	for i, item := range items {
		vs[i] = cartItemSnapshot{
			Product:  toProductSnapshot(item.Product),
			Quantity: item.Quantity,
		}
	}

	if err := s.write(ctx, cartKey, vs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Storage) ReadWishlist(ctx context.Context) ([]domain.Product, error) {
	const op = "Storage.ReadWishlist"

	data, err := s.read(ctx, wishlistKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if data == nil {
		return nil, nil
	}

	ps, err := decodeWishlist(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Storage) WriteWishlist(ctx context.Context, ps []domain.Product) error {
	const op = "Storage.WriteWishlist"

	vs := make([]productSnapshot, len(ps))
	for i, p := range ps {
		vs[i] = toProductSnapshot(p)
	}

	if err := s.write(ctx, wishlistKey, vs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Storage) ReadSession(ctx context.Context) (domain.User, bool, error) {
	const op = "Storage.ReadSession"

	data, err := s.read(ctx, sessionKey)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if data == nil {
		return domain.User{}, false, nil
	}

	u, ok, err := decodeSession(data)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return u, ok, nil
}

func (s Storage) WriteSession(ctx context.Context, u domain.User) error {
	const op = "Storage.WriteSession"

	v := userSnapshot{ID: u.ID, Name: u.Name, Email: u.Email}
	if err := s.write(ctx, sessionKey, v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Storage) DeleteSession(ctx context.Context) error {
	const op = "Storage.DeleteSession"

	if err := s.cl.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Storage) read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.cl.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s Storage) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.cl.Set(ctx, key, data, 0).Err()
}

// decodeCart validates the snapshot shape at the deserialization
// boundary: entries without a product id or with a non-positive
// quantity are dropped instead of failing the whole restore.
func decodeCart(data []byte) ([]domain.CartItem, error) {
	var vs []cartItemSnapshot
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}

	var items []domain.CartItem
	for _, v := range vs {
		if v.Product.ID == 0 || v.Quantity < 1 {
			continue
		}
		items = append(items, domain.CartItem{
			Product:  toDomainProduct(v.Product),
			Quantity: v.Quantity,
		})
	}
	return items, nil
}

func decodeWishlist(data []byte) ([]domain.Product, error) {
	var vs []productSnapshot
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}

	var ps []domain.Product
	for _, v := range vs {
		if v.ID == 0 {
			continue
		}
		ps = append(ps, toDomainProduct(v))
	}
	return ps, nil
}

func decodeSession(data []byte) (domain.User, bool, error) {
	var v userSnapshot
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.User{}, false, err
	}
	if v.ID == "" {
		return domain.User{}, false, nil
	}
	return domain.User{ID: v.ID, Name: v.Name, Email: v.Email}, true, nil
}

func toProductSnapshot(p domain.Product) productSnapshot {
	return productSnapshot{
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

func toDomainProduct(v productSnapshot) domain.Product {
	return domain.Product{
		ID:                 v.ID,
		Title:              v.Title,
		Description:        v.Description,
		Brand:              v.Brand,
		Category:           v.Category,
		Price:              v.Price,
		DiscountPercentage: v.DiscountPercentage,
		Rating:             v.Rating,
		Stock:              v.Stock,
		Thumbnail:          v.Thumbnail,
		Images:             v.Images,
	}
}
