package repository

import (
	"context"
)

const createCustomer = `-- name: CreateCustomer :one
INSERT INTO customers (username, password)
VALUES ($1, $2)
RETURNING id, username, password, created_at
`

type CreateCustomerParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, createCustomer, arg.Username, arg.Password)
	var i Customer
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Password,
		&i.CreatedAt,
	)
	return i, err
}

const getCustomerByUsername = `-- name: GetCustomerByUsername :one
SELECT id, username, password, created_at
FROM customers
WHERE username = $1
`

func (q *Queries) GetCustomerByUsername(ctx context.Context, username string) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomerByUsername, username)
	var i Customer
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Password,
		&i.CreatedAt,
	)
	return i, err
}
