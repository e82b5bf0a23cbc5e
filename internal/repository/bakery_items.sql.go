package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const addBakeryItemIngredient = `-- name: AddBakeryItemIngredient :exec
INSERT INTO bakery_item_ingredients (bakery_item_id, ingredient_id)
VALUES ($1, $2)
`

type AddBakeryItemIngredientParams struct {
	BakeryItemID pgtype.UUID `json:"bakery_item_id"`
	IngredientID pgtype.UUID `json:"ingredient_id"`
}

func (q *Queries) AddBakeryItemIngredient(ctx context.Context, arg AddBakeryItemIngredientParams) error {
	_, err := q.db.Exec(ctx, addBakeryItemIngredient, arg.BakeryItemID, arg.IngredientID)
	return err
}

const createBakeryItem = `-- name: CreateBakeryItem :one
INSERT INTO bakery_items (quantity, cost_price, selling_price)
VALUES ($1, $2, $3)
RETURNING id, quantity, cost_price, selling_price, is_available
`

type CreateBakeryItemParams struct {
	Quantity     pgtype.Numeric `json:"quantity"`
	CostPrice    pgtype.Numeric `json:"cost_price"`
	SellingPrice pgtype.Numeric `json:"selling_price"`
}

func (q *Queries) CreateBakeryItem(ctx context.Context, arg CreateBakeryItemParams) (BakeryItem, error) {
	row := q.db.QueryRow(ctx, createBakeryItem, arg.Quantity, arg.CostPrice, arg.SellingPrice)
	var i BakeryItem
	err := row.Scan(
		&i.ID,
		&i.Quantity,
		&i.CostPrice,
		&i.SellingPrice,
		&i.IsAvailable,
	)
	return i, err
}

const getBakeryItem = `-- name: GetBakeryItem :one
SELECT id, quantity, cost_price, selling_price, is_available
FROM bakery_items
WHERE id = $1
`

func (q *Queries) GetBakeryItem(ctx context.Context, id pgtype.UUID) (BakeryItem, error) {
	row := q.db.QueryRow(ctx, getBakeryItem, id)
	var i BakeryItem
	err := row.Scan(
		&i.ID,
		&i.Quantity,
		&i.CostPrice,
		&i.SellingPrice,
		&i.IsAvailable,
	)
	return i, err
}

const listAvailableBakeryItems = `-- name: ListAvailableBakeryItems :many
SELECT id, quantity, cost_price, selling_price, is_available
FROM bakery_items
WHERE is_available = true
`

func (q *Queries) ListAvailableBakeryItems(ctx context.Context) ([]BakeryItem, error) {
	rows, err := q.db.Query(ctx, listAvailableBakeryItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BakeryItem{}
	for rows.Next() {
		var i BakeryItem
		if err := rows.Scan(
			&i.ID,
			&i.Quantity,
			&i.CostPrice,
			&i.SellingPrice,
			&i.IsAvailable,
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

const listBakeryItems = `-- name: ListBakeryItems :many
SELECT id, quantity, cost_price, selling_price, is_available
FROM bakery_items
`

func (q *Queries) ListBakeryItems(ctx context.Context) ([]BakeryItem, error) {
	rows, err := q.db.Query(ctx, listBakeryItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BakeryItem{}
	for rows.Next() {
		var i BakeryItem
		if err := rows.Scan(
			&i.ID,
			&i.Quantity,
			&i.CostPrice,
			&i.SellingPrice,
			&i.IsAvailable,
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

const listBakeryItemIngredients = `-- name: ListBakeryItemIngredients :many
SELECT bii.bakery_item_id, i.id, i.name, i.flavour, i.description
FROM bakery_item_ingredients bii
JOIN ingredients i ON i.id = bii.ingredient_id
WHERE bii.bakery_item_id = ANY($1::uuid[])
`

type ListBakeryItemIngredientsRow struct {
	BakeryItemID pgtype.UUID `json:"bakery_item_id"`
	ID           pgtype.UUID `json:"id"`
	Name         string      `json:"name"`
	Flavour      string      `json:"flavour"`
	Description  pgtype.Text `json:"description"`
}

func (q *Queries) ListBakeryItemIngredients(ctx context.Context, itemIDs []pgtype.UUID) ([]ListBakeryItemIngredientsRow, error) {
	rows, err := q.db.Query(ctx, listBakeryItemIngredients, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBakeryItemIngredientsRow{}
	for rows.Next() {
		var i ListBakeryItemIngredientsRow
		if err := rows.Scan(
			&i.BakeryItemID,
			&i.ID,
			&i.Name,
			&i.Flavour,
			&i.Description,
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
