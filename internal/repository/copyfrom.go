package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type BulkInsertOrderItemsParams struct {
	OrderID  pgtype.UUID `json:"order"`
	ItemID   pgtype.UUID `json:"item"`
	Quantity int32       `json:"quantity"`
}

type iteratorForBulkInsertOrderItems struct {
	rows                 []BulkInsertOrderItemsParams
	skippedFirstNextCall bool
}

func (r *iteratorForBulkInsertOrderItems) Next() bool {
	if len(r.rows) == 0 {
		return false
	}
	if !r.skippedFirstNextCall {
		r.skippedFirstNextCall = true
		return true
	}
	r.rows = r.rows[1:]
	return len(r.rows) > 0
}

func (r iteratorForBulkInsertOrderItems) Values() ([]interface{}, error) {
	return []interface{}{
		r.rows[0].OrderID,
		r.rows[0].ItemID,
		r.rows[0].Quantity,
	}, nil
}

func (r iteratorForBulkInsertOrderItems) Err() error {
	return nil
}

func (q *Queries) BulkInsertOrderItems(ctx context.Context, arg []BulkInsertOrderItemsParams) (int64, error) {
	return q.db.CopyFrom(ctx, []string{"order_items"}, []string{"order_id", "item_id", "quantity"}, &iteratorForBulkInsertOrderItems{rows: arg})
}
