package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderPlacer struct {
	mock.Mock
}

func (m *mockOrderPlacer) CreateOrder(ctx context.Context, customerID pgtype.UUID) (Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(Order), args.Error(1)
}

func (m *mockOrderPlacer) GetBakeryItem(ctx context.Context, id pgtype.UUID) (BakeryItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(BakeryItem), args.Error(1)
}

func (m *mockOrderPlacer) BulkInsertOrderItems(ctx context.Context, arg []BulkInsertOrderItemsParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func testUUID(t *testing.T) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	require.NoError(t, id.Scan(uuid.NewString()))
	return id
}

func testNumeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(s))
	return n
}

func TestPlaceOrderTx(t *testing.T) {
	customerID := testUUID(t)

	t.Run("Total Sums Unit Prices Once Per Line", func(t *testing.T) {
		q := new(mockOrderPlacer)
		orderID := testUUID(t)
		itemA := BakeryItem{ID: testUUID(t), CostPrice: testNumeric(t, "10.500"), IsAvailable: true}
		itemB := BakeryItem{ID: testUUID(t), CostPrice: testNumeric(t, "4.250"), IsAvailable: true}

		q.On("CreateOrder", mock.Anything, customerID).Return(Order{ID: orderID, CustomerID: customerID}, nil).Once()
		q.On("GetBakeryItem", mock.Anything, itemA.ID).Return(itemA, nil).Once()
		q.On("GetBakeryItem", mock.Anything, itemB.ID).Return(itemB, nil).Once()
		q.On("BulkInsertOrderItems", mock.Anything, []BulkInsertOrderItemsParams{
			{OrderID: orderID, ItemID: itemA.ID, Quantity: 3},
			{OrderID: orderID, ItemID: itemB.ID, Quantity: 1},
		}).Return(int64(2), nil).Once()

		result, err := placeOrderTx(context.Background(), q, customerID, []OrderLine{
			{ItemID: itemA.ID, Quantity: 3},
			{ItemID: itemB.ID, Quantity: 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), result.ItemCount)
		// Unit price per line; the quantity of 3 does not scale the total.
		assert.InDelta(t, 14.75, result.TotalPayable, 1e-9)
		assert.Equal(t, orderID, result.Order.ID)
		q.AssertExpectations(t)
	})

	t.Run("Unknown Item Aborts Before Insert", func(t *testing.T) {
		q := new(mockOrderPlacer)
		orderID := testUUID(t)
		itemA := BakeryItem{ID: testUUID(t), CostPrice: testNumeric(t, "10.500"), IsAvailable: true}
		missingID := testUUID(t)

		q.On("CreateOrder", mock.Anything, customerID).Return(Order{ID: orderID}, nil).Once()
		q.On("GetBakeryItem", mock.Anything, itemA.ID).Return(itemA, nil).Once()
		q.On("GetBakeryItem", mock.Anything, missingID).Return(BakeryItem{}, pgx.ErrNoRows).Once()

		_, err := placeOrderTx(context.Background(), q, customerID, []OrderLine{
			{ItemID: itemA.ID, Quantity: 1},
			{ItemID: missingID, Quantity: 1},
			{ItemID: itemA.ID, Quantity: 1},
		})

		assert.ErrorIs(t, err, ErrBakeryItemNotFound)
		// The third line is never looked up and nothing is persisted.
		q.AssertNumberOfCalls(t, "GetBakeryItem", 2)
		q.AssertNotCalled(t, "BulkInsertOrderItems", mock.Anything, mock.Anything)
	})

	t.Run("Create Order Error", func(t *testing.T) {
		q := new(mockOrderPlacer)
		q.On("CreateOrder", mock.Anything, customerID).Return(Order{}, errors.New("db error")).Once()

		_, err := placeOrderTx(context.Background(), q, customerID, []OrderLine{{ItemID: testUUID(t), Quantity: 1}})

		assert.Error(t, err)
		q.AssertNotCalled(t, "GetBakeryItem", mock.Anything, mock.Anything)
	})
}

type mockBakeryItemCreator struct {
	mock.Mock
}

func (m *mockBakeryItemCreator) CreateBakeryItem(ctx context.Context, arg CreateBakeryItemParams) (BakeryItem, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(BakeryItem), args.Error(1)
}

func (m *mockBakeryItemCreator) ListIngredientsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Ingredient, error) {
	args := m.Called(ctx, ids)
	if i, ok := args.Get(0).([]Ingredient); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBakeryItemCreator) AddBakeryItemIngredient(ctx context.Context, arg AddBakeryItemIngredientParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func TestCreateBakeryItemTx(t *testing.T) {
	t.Run("Unknown Ingredient IDs Are Ignored", func(t *testing.T) {
		q := new(mockBakeryItemCreator)
		item := BakeryItem{ID: testUUID(t), IsAvailable: true}
		knownA := Ingredient{ID: testUUID(t), Name: "Flour", Flavour: "Plain"}
		knownB := Ingredient{ID: testUUID(t), Name: "Cocoa", Flavour: "Bitter"}
		unknownID := testUUID(t)
		requested := []pgtype.UUID{knownA.ID, knownB.ID, unknownID}

		q.On("CreateBakeryItem", mock.Anything, mock.Anything).Return(item, nil).Once()
		q.On("ListIngredientsByIDs", mock.Anything, requested).Return([]Ingredient{knownA, knownB}, nil).Once()
		q.On("AddBakeryItemIngredient", mock.Anything, AddBakeryItemIngredientParams{BakeryItemID: item.ID, IngredientID: knownA.ID}).Return(nil).Once()
		q.On("AddBakeryItemIngredient", mock.Anything, AddBakeryItemIngredientParams{BakeryItemID: item.ID, IngredientID: knownB.ID}).Return(nil).Once()

		created, err := createBakeryItemTx(context.Background(), q, CreateBakeryItemParams{}, requested)

		assert.NoError(t, err)
		assert.Equal(t, item.ID, created.ID)
		q.AssertExpectations(t)
	})

	t.Run("No Ingredients", func(t *testing.T) {
		q := new(mockBakeryItemCreator)
		item := BakeryItem{ID: testUUID(t), IsAvailable: true}

		q.On("CreateBakeryItem", mock.Anything, mock.Anything).Return(item, nil).Once()

		created, err := createBakeryItemTx(context.Background(), q, CreateBakeryItemParams{}, nil)

		assert.NoError(t, err)
		assert.Equal(t, item.ID, created.ID)
		q.AssertNotCalled(t, "ListIngredientsByIDs", mock.Anything, mock.Anything)
	})
}

type mockIngredientCreator struct {
	mock.Mock
}

func (m *mockIngredientCreator) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(Ingredient), args.Error(1)
}

func TestAddIngredientsTx(t *testing.T) {
	t.Run("Preserves Input Order", func(t *testing.T) {
		q := new(mockIngredientCreator)
		params := []CreateIngredientParams{
			{Name: "Flour", Flavour: "Plain"},
			{Name: "Cocoa", Flavour: "Bitter"},
			{Name: "Vanilla", Flavour: "Sweet"},
		}
		for _, p := range params {
			p := p
			q.On("CreateIngredient", mock.Anything, p).Return(Ingredient{Name: p.Name, Flavour: p.Flavour}, nil).Once()
		}

		created, err := addIngredientsTx(context.Background(), q, params)

		assert.NoError(t, err)
		require.Len(t, created, 3)
		assert.Equal(t, "Flour", created[0].Name)
		assert.Equal(t, "Cocoa", created[1].Name)
		assert.Equal(t, "Vanilla", created[2].Name)
		q.AssertExpectations(t)
	})

	t.Run("Insert Error Aborts", func(t *testing.T) {
		q := new(mockIngredientCreator)
		params := []CreateIngredientParams{
			{Name: "Flour", Flavour: "Plain"},
			{Name: "Cocoa", Flavour: "Bitter"},
		}
		q.On("CreateIngredient", mock.Anything, params[0]).Return(Ingredient{}, errors.New("db error")).Once()

		_, err := addIngredientsTx(context.Background(), q, params)

		assert.Error(t, err)
		q.AssertNumberOfCalls(t, "CreateIngredient", 1)
	})
}
