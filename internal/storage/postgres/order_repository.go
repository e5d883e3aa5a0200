package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const orderColumns = `id, order_no, client_id, freight_type, pol, pod, goods_name, freight, total_amount,
                      currency, order_status, created_at, updated_at, is_deleted, deleted_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderNo, &o.ClientID, &o.FreightType, &o.POL, &o.POD, &o.GoodsName,
		&o.Freight, &o.TotalAmount, &o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt, &o.IsDeleted, &o.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// translateError maps driver failures onto domain errors.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domainErrors.NewPersistenceError(op, fmt.Errorf("%w: %s", domainErrors.ErrAlreadyExists, pgErr.Detail))
		case pgForeignKeyViolation:
			return domainErrors.NewPersistenceError(op, fmt.Errorf("%w: %s", domainErrors.ErrUnknownClient, pgErr.Detail))
		}
	}
	return domainErrors.NewPersistenceError(op, err)
}

// --- OrderRepository implementation ---

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	query := `INSERT INTO orders (order_no, client_id, freight_type, pol, pod, goods_name, freight, total_amount,
                                  currency, order_status, created_at, updated_at, is_deleted, deleted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11, FALSE, NULL)
              RETURNING ` + orderColumns
	now := r.storage.clock.Now()
	row := r.storage.conn(ctx).QueryRow(ctx, query,
		order.OrderNo, order.ClientID, order.FreightType, order.POL, order.POD, order.GoodsName,
		order.Freight, order.TotalAmount, order.Currency, order.Status, now)
	created, err := scanOrder(row)
	if err != nil {
		return nil, translateError("insert order", err)
	}
	return created, nil
}

// FindMany counts and lists matches inside one read-only snapshot, so total agrees with the page.
func (r *orderRepository) FindMany(ctx context.Context, filter model.OrderFilter, page model.Page) ([]model.Order, int, error) {
	where, args := buildWhere(filter)

	var (
		result []model.Order
		total  int
	)
	err := r.storage.withTx(ctx, snapshotTx, func(ctx context.Context) error {
		conn := r.storage.conn(ctx)
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
			return translateError("count orders", err)
		}
		if total == 0 {
			result = []model.Order{}
			return nil
		}

		n := len(args)
		query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			orderColumns, where, n+1, n+2)
		rows, err := conn.Query(ctx, query, append(args, page.Size, page.Offset())...)
		if err != nil {
			return translateError("list orders", err)
		}
		defer rows.Close()

		result = make([]model.Order, 0, page.Size)
		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return translateError("list orders", err)
			}
			result = append(result, *o)
		}
		if err := rows.Err(); err != nil {
			return translateError("list orders", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderNo string, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET order_status=$1, updated_at=$2 WHERE order_no=$3 RETURNING ` + orderColumns
	return r.mutate(ctx, "update order status", query, status, r.storage.clock.Now(), orderNo)
}

func (r *orderRepository) SoftDelete(ctx context.Context, orderNo string) (*model.Order, error) {
	query := `UPDATE orders SET is_deleted=TRUE, deleted_at=$1, updated_at=$1
              WHERE order_no=$2 AND is_deleted=FALSE RETURNING ` + orderColumns
	return r.mutate(ctx, "soft delete order", query, r.storage.clock.Now(), orderNo)
}

func (r *orderRepository) Restore(ctx context.Context, orderNo string) (*model.Order, error) {
	query := `UPDATE orders SET is_deleted=FALSE, deleted_at=NULL, updated_at=$1
              WHERE order_no=$2 AND is_deleted=TRUE RETURNING ` + orderColumns
	return r.mutate(ctx, "restore order", query, r.storage.clock.Now(), orderNo)
}

// mutate runs a guarded single-row UPDATE. No returned row means the order is absent or the
// guard did not hold.
func (r *orderRepository) mutate(ctx context.Context, op, query string, args ...any) (*model.Order, error) {
	order, err := scanOrder(r.storage.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, translateError(op, err)
	}
	return order, nil
}
