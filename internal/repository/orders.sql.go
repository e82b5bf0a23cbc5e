package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING id, customer_id, order_date, is_delivered
`

func (q *Queries) CreateOrder(ctx context.Context, customerID pgtype.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder, customerID)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.OrderDate,
		&i.IsDelivered,
	)
	return i, err
}

const listOrderItemsByCustomer = `-- name: ListOrderItemsByCustomer :many
SELECT oi.id, oi.order_id, oi.item_id, oi.quantity, o.customer_id, o.order_date, o.is_delivered
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
WHERE o.customer_id = $1
`

type ListOrderItemsByCustomerRow struct {
	ID          pgtype.UUID        `json:"id"`
	OrderID     pgtype.UUID        `json:"order"`
	ItemID      pgtype.UUID        `json:"item"`
	Quantity    int32              `json:"quantity"`
	CustomerID  pgtype.UUID        `json:"customer"`
	OrderDate   pgtype.Timestamptz `json:"order_date"`
	IsDelivered bool               `json:"is_delivered"`
}

func (q *Queries) ListOrderItemsByCustomer(ctx context.Context, customerID pgtype.UUID) ([]ListOrderItemsByCustomerRow, error) {
	rows, err := q.db.Query(ctx, listOrderItemsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListOrderItemsByCustomerRow{}
	for rows.Next() {
		var i ListOrderItemsByCustomerRow
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ItemID,
			&i.Quantity,
			&i.CustomerID,
			&i.OrderDate,
			&i.IsDelivered,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOrderDelivered = `-- name: MarkOrderDelivered :execrows
UPDATE orders
SET is_delivered = true
WHERE id = $1 AND customer_id = $2
`

type MarkOrderDeliveredParams struct {
	ID         pgtype.UUID `json:"id"`
	CustomerID pgtype.UUID `json:"customer"`
}

func (q *Queries) MarkOrderDelivered(ctx context.Context, arg MarkOrderDeliveredParams) (int64, error) {
	result, err := q.db.Exec(ctx, markOrderDelivered, arg.ID, arg.CustomerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
