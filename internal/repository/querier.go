package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	AddBakeryItemIngredient(ctx context.Context, arg AddBakeryItemIngredientParams) error
	BulkInsertOrderItems(ctx context.Context, arg []BulkInsertOrderItemsParams) (int64, error)
	CreateBakeryItem(ctx context.Context, arg CreateBakeryItemParams) (BakeryItem, error)
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
	CreateOrder(ctx context.Context, customerID pgtype.UUID) (Order, error)
	GetBakeryItem(ctx context.Context, id pgtype.UUID) (BakeryItem, error)
	GetCustomerByUsername(ctx context.Context, username string) (Customer, error)
	ListAvailableBakeryItems(ctx context.Context) ([]BakeryItem, error)
	ListBakeryItemIngredients(ctx context.Context, itemIDs []pgtype.UUID) ([]ListBakeryItemIngredientsRow, error)
	ListBakeryItems(ctx context.Context) ([]BakeryItem, error)
	ListIngredientsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Ingredient, error)
	ListOrderItemsByCustomer(ctx context.Context, customerID pgtype.UUID) ([]ListOrderItemsByCustomerRow, error)
	MarkOrderDelivered(ctx context.Context, arg MarkOrderDeliveredParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
