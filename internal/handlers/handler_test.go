package handlers_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/harshit1711/Bakery-Management/internal/auth"
	"github.com/harshit1711/Bakery-Management/internal/middlewares"
	"github.com/harshit1711/Bakery-Management/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerUUIDTest = "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"
	itemUUIDTest     = "b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12"
	orderUUIDTest    = "c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AddBakeryItemIngredient(ctx context.Context, arg repository.AddBakeryItemIngredientParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockStore) BulkInsertOrderItems(ctx context.Context, arg []repository.BulkInsertOrderItemsParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateBakeryItem(ctx context.Context, arg repository.CreateBakeryItemParams) (repository.BakeryItem, error) {
	args := m.Called(ctx, arg)
	if i, ok := args.Get(0).(repository.BakeryItem); ok {
		return i, args.Error(1)
	}
	return repository.BakeryItem{}, args.Error(1)
}

func (m *MockStore) CreateCustomer(ctx context.Context, arg repository.CreateCustomerParams) (repository.Customer, error) {
	args := m.Called(ctx, arg)
	if c, ok := args.Get(0).(repository.Customer); ok {
		return c, args.Error(1)
	}
	return repository.Customer{}, args.Error(1)
}

func (m *MockStore) CreateIngredient(ctx context.Context, arg repository.CreateIngredientParams) (repository.Ingredient, error) {
	args := m.Called(ctx, arg)
	if i, ok := args.Get(0).(repository.Ingredient); ok {
		return i, args.Error(1)
	}
	return repository.Ingredient{}, args.Error(1)
}

func (m *MockStore) CreateOrder(ctx context.Context, customerID pgtype.UUID) (repository.Order, error) {
	args := m.Called(ctx, customerID)
	if o, ok := args.Get(0).(repository.Order); ok {
		return o, args.Error(1)
	}
	return repository.Order{}, args.Error(1)
}

func (m *MockStore) GetBakeryItem(ctx context.Context, id pgtype.UUID) (repository.BakeryItem, error) {
	args := m.Called(ctx, id)
	if i, ok := args.Get(0).(repository.BakeryItem); ok {
		return i, args.Error(1)
	}
	return repository.BakeryItem{}, args.Error(1)
}

func (m *MockStore) GetCustomerByUsername(ctx context.Context, username string) (repository.Customer, error) {
	args := m.Called(ctx, username)
	if c, ok := args.Get(0).(repository.Customer); ok {
		return c, args.Error(1)
	}
	return repository.Customer{}, args.Error(1)
}

func (m *MockStore) ListAvailableBakeryItems(ctx context.Context) ([]repository.BakeryItem, error) {
	args := m.Called(ctx)
	if i, ok := args.Get(0).([]repository.BakeryItem); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListBakeryItemIngredients(ctx context.Context, itemIDs []pgtype.UUID) ([]repository.ListBakeryItemIngredientsRow, error) {
	args := m.Called(ctx, itemIDs)
	if r, ok := args.Get(0).([]repository.ListBakeryItemIngredientsRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListBakeryItems(ctx context.Context) ([]repository.BakeryItem, error) {
	args := m.Called(ctx)
	if i, ok := args.Get(0).([]repository.BakeryItem); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListIngredientsByIDs(ctx context.Context, ids []pgtype.UUID) ([]repository.Ingredient, error) {
	args := m.Called(ctx, ids)
	if i, ok := args.Get(0).([]repository.Ingredient); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ListOrderItemsByCustomer(ctx context.Context, customerID pgtype.UUID) ([]repository.ListOrderItemsByCustomerRow, error) {
	args := m.Called(ctx, customerID)
	if r, ok := args.Get(0).([]repository.ListOrderItemsByCustomerRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) MarkOrderDelivered(ctx context.Context, arg repository.MarkOrderDeliveredParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AddIngredients(ctx context.Context, params []repository.CreateIngredientParams) ([]repository.Ingredient, error) {
	args := m.Called(ctx, params)
	if i, ok := args.Get(0).([]repository.Ingredient); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) CreateBakeryItemWithIngredients(ctx context.Context, arg repository.CreateBakeryItemParams, ingredientIDs []pgtype.UUID) (repository.BakeryItem, error) {
	args := m.Called(ctx, arg, ingredientIDs)
	if i, ok := args.Get(0).(repository.BakeryItem); ok {
		return i, args.Error(1)
	}
	return repository.BakeryItem{}, args.Error(1)
}

func (m *MockStore) PlaceOrder(ctx context.Context, customerID pgtype.UUID, lines []repository.OrderLine) (repository.PlaceOrderResult, error) {
	args := m.Called(ctx, customerID, lines)
	if r, ok := args.Get(0).(repository.PlaceOrderResult); ok {
		return r, args.Error(1)
	}
	return repository.PlaceOrderResult{}, args.Error(1)
}

var _ repository.Store = (*MockStore)(nil)

func mustUUID(t *testing.T, s string) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	require.NoError(t, id.Scan(s))
	return id
}

func mustNumeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(s))
	return n
}

// authedRequest builds a request carrying the claims the auth middleware
// would have attached.
func authedRequest(t *testing.T, method, target string, body io.Reader, customerID string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)

	claims := &auth.Claims{
		Username: "testcustomer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: customerID,
		},
	}
	return req.WithContext(middlewares.ContextWithClaims(req.Context(), claims))
}
