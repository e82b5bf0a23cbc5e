package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type BakeryItem struct {
	ID           pgtype.UUID    `json:"id"`
	Quantity     pgtype.Numeric `json:"quantity"`
	CostPrice    pgtype.Numeric `json:"cost_price"`
	SellingPrice pgtype.Numeric `json:"selling_price"`
	IsAvailable  bool           `json:"is_available"`
}

type BakeryItemIngredient struct {
	BakeryItemID pgtype.UUID `json:"bakery_item_id"`
	IngredientID pgtype.UUID `json:"ingredient_id"`
}

type Customer struct {
	ID        pgtype.UUID        `json:"id"`
	Username  string             `json:"username"`
	Password  string             `json:"-"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Ingredient struct {
	ID          pgtype.UUID `json:"id"`
	Name        string      `json:"name"`
	Flavour     string      `json:"flavour"`
	Description pgtype.Text `json:"description"`
}

type Order struct {
	ID          pgtype.UUID        `json:"id"`
	CustomerID  pgtype.UUID        `json:"customer"`
	OrderDate   pgtype.Timestamptz `json:"order_date"`
	IsDelivered bool               `json:"is_delivered"`
}

type OrderItem struct {
	ID       pgtype.UUID `json:"id"`
	OrderID  pgtype.UUID `json:"order"`
	ItemID   pgtype.UUID `json:"item"`
	Quantity int32       `json:"quantity"`
}
