package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type orderItem struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Thumbnail string  `json:"thumbnail"`
}

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, o domain.Order,
) (storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO orders (
			order_id, user_id, items, subtotal, discount,
			shipping, total, status, payment_method, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	itemsB, _ := json.Marshal(toOrderItems(o.Items))
	_, err = tx.ExecContext(ctx, query,
		o.ID, o.UserID, string(itemsB), o.Subtotal, o.Discount,
		o.Shipping, o.Total, string(o.Status), o.PaymentMethod, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}

	return nil
}

func (r OrdersRepository) OrdersByUser(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "OrdersRepository.OrdersByUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			order_id, user_id, items, subtotal, discount,
			shipping, total, status, payment_method, created_at
		FROM orders
		WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o         domain.Order
			itemsS    string
			status    string
			createdAt time.Time
		)
		err := rows.Scan(
			&o.ID, &o.UserID, &itemsS, &o.Subtotal, &o.Discount,
			&o.Shipping, &o.Total, &status, &o.PaymentMethod, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var items []orderItem
		if err := json.Unmarshal([]byte(itemsS), &items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		o.Items = toDomainItems(items)
		o.Status = domain.OrderStatus(status)
		o.CreatedAt = createdAt
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func toOrderItems(vs []domain.OrderItem) []orderItem {
	items := make([]orderItem, len(vs))
	for i, v := range vs {
		items[i] = orderItem{
			ProductID: v.ProductID,
			Title:     v.Title,
			UnitPrice: v.UnitPrice,
			Quantity:  v.Quantity,
			Thumbnail: v.Thumbnail,
		}
	}
	return items
}

func toDomainItems(vs []orderItem) []domain.OrderItem {
	items := make([]domain.OrderItem, len(vs))
	for i, v := range vs {
		items[i] = domain.OrderItem{
			ProductID: v.ProductID,
			Title:     v.Title,
			UnitPrice: v.UnitPrice,
			Quantity:  v.Quantity,
			Thumbnail: v.Thumbnail,
		}
	}
	return items
}
