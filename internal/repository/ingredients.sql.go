package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createIngredient = `-- name: CreateIngredient :one
INSERT INTO ingredients (name, flavour, description)
VALUES ($1, $2, $3)
RETURNING id, name, flavour, description
`

type CreateIngredientParams struct {
	Name        string      `json:"name"`
	Flavour     string      `json:"flavour"`
	Description pgtype.Text `json:"description"`
}

func (q *Queries) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error) {
	row := q.db.QueryRow(ctx, createIngredient, arg.Name, arg.Flavour, arg.Description)
	var i Ingredient
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Flavour,
		&i.Description,
	)
	return i, err
}

const listIngredientsByIDs = `-- name: ListIngredientsByIDs :many
SELECT id, name, flavour, description
FROM ingredients
WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListIngredientsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, listIngredientsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Ingredient{}
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(
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
