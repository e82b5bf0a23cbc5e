package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBakeryItemNotFound = errors.New("item does not exist in the bakery")

// OrderLine is one requested line of an order, in input order.
type OrderLine struct {
	ItemID   pgtype.UUID
	Quantity int32
}

type PlaceOrderResult struct {
	Order        Order
	ItemCount    int64
	TotalPayable float64
}

// Store is the persistence surface the handlers depend on: the generated
// queries plus the transactional workflows.
type Store interface {
	Querier
	AddIngredients(ctx context.Context, args []CreateIngredientParams) ([]Ingredient, error)
	CreateBakeryItemWithIngredients(ctx context.Context, arg CreateBakeryItemParams, ingredientIDs []pgtype.UUID) (BakeryItem, error)
	PlaceOrder(ctx context.Context, customerID pgtype.UUID, lines []OrderLine) (PlaceOrderResult, error)
}

type PostgreSQLBakeryRepository struct {
	*Queries
	db *pgxpool.Pool
}

var _ Store = (*PostgreSQLBakeryRepository)(nil)

func NewPostgreSQLBakeryRepository(db *pgxpool.Pool) *PostgreSQLBakeryRepository {
	return &PostgreSQLBakeryRepository{
		db:      db,
		Queries: New(db),
	}
}

func (s *PostgreSQLBakeryRepository) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// AddIngredients inserts every entry or none, preserving input order.
func (s *PostgreSQLBakeryRepository) AddIngredients(ctx context.Context, args []CreateIngredientParams) ([]Ingredient, error) {
	var created []Ingredient
	err := s.execTx(ctx, func(q *Queries) error {
		var err error
		created, err = addIngredientsTx(ctx, q, args)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PostgreSQLBakeryRepository) CreateBakeryItemWithIngredients(ctx context.Context, arg CreateBakeryItemParams, ingredientIDs []pgtype.UUID) (BakeryItem, error) {
	var created BakeryItem
	err := s.execTx(ctx, func(q *Queries) error {
		var err error
		created, err = createBakeryItemTx(ctx, q, arg, ingredientIDs)
		return err
	})
	if err != nil {
		return BakeryItem{}, err
	}
	return created, nil
}

// PlaceOrder runs the whole placement in one transaction: a line referencing
// a nonexistent item rolls back the order header too.
func (s *PostgreSQLBakeryRepository) PlaceOrder(ctx context.Context, customerID pgtype.UUID, lines []OrderLine) (PlaceOrderResult, error) {
	var result PlaceOrderResult
	err := s.execTx(ctx, func(q *Queries) error {
		var err error
		result, err = placeOrderTx(ctx, q, customerID, lines)
		return err
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}
	return result, nil
}

type ingredientCreator interface {
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
}

func addIngredientsTx(ctx context.Context, q ingredientCreator, args []CreateIngredientParams) ([]Ingredient, error) {
	created := make([]Ingredient, 0, len(args))
	for _, arg := range args {
		ingredient, err := q.CreateIngredient(ctx, arg)
		if err != nil {
			return nil, fmt.Errorf("failed to create ingredient %q: %w", arg.Name, err)
		}
		created = append(created, ingredient)
	}
	return created, nil
}

type bakeryItemCreator interface {
	CreateBakeryItem(ctx context.Context, arg CreateBakeryItemParams) (BakeryItem, error)
	ListIngredientsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Ingredient, error)
	AddBakeryItemIngredient(ctx context.Context, arg AddBakeryItemIngredientParams) error
}

func createBakeryItemTx(ctx context.Context, q bakeryItemCreator, arg CreateBakeryItemParams, ingredientIDs []pgtype.UUID) (BakeryItem, error) {
	item, err := q.CreateBakeryItem(ctx, arg)
	if err != nil {
		return BakeryItem{}, fmt.Errorf("failed to create bakery item: %w", err)
	}

	if len(ingredientIDs) == 0 {
		return item, nil
	}

	// Only the ingredients that actually exist are attached; unknown ids
	// are ignored.
	matched, err := q.ListIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return BakeryItem{}, fmt.Errorf("failed to resolve ingredients: %w", err)
	}

	for _, ingredient := range matched {
		err := q.AddBakeryItemIngredient(ctx, AddBakeryItemIngredientParams{
			BakeryItemID: item.ID,
			IngredientID: ingredient.ID,
		})
		if err != nil {
			return BakeryItem{}, fmt.Errorf("failed to attach ingredient: %w", err)
		}
	}

	return item, nil
}

type orderPlacer interface {
	CreateOrder(ctx context.Context, customerID pgtype.UUID) (Order, error)
	GetBakeryItem(ctx context.Context, id pgtype.UUID) (BakeryItem, error)
	BulkInsertOrderItems(ctx context.Context, arg []BulkInsertOrderItemsParams) (int64, error)
}

func placeOrderTx(ctx context.Context, q orderPlacer, customerID pgtype.UUID, lines []OrderLine) (PlaceOrderResult, error) {
	order, err := q.CreateOrder(ctx, customerID)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	// Billing accrues each line's unit cost price once per line; the line
	// quantity is deliberately not applied to the total.
	totalPayable := 0.0
	staged := make([]BulkInsertOrderItemsParams, 0, len(lines))
	for _, line := range lines {
		item, err := q.GetBakeryItem(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return PlaceOrderResult{}, ErrBakeryItemNotFound
			}
			return PlaceOrderResult{}, fmt.Errorf("failed to look up bakery item: %w", err)
		}

		costPrice, err := item.CostPrice.Float64Value()
		if err != nil {
			return PlaceOrderResult{}, fmt.Errorf("failed to convert cost price: %w", err)
		}
		totalPayable += costPrice.Float64

		staged = append(staged, BulkInsertOrderItemsParams{
			OrderID:  order.ID,
			ItemID:   item.ID,
			Quantity: line.Quantity,
		})
	}

	inserted, err := q.BulkInsertOrderItems(ctx, staged)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("failed to insert order items: %w", err)
	}

	return PlaceOrderResult{
		Order:        order,
		ItemCount:    inserted,
		TotalPayable: totalPayable,
	}, nil
}
