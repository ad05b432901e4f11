// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"time"

	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGroceryRepository provides a mock implementation of GroceryRepository
type MockGroceryRepository struct {
	mock.Mock
}

// Create creates a grocery item
func (m *MockGroceryRepository) Create(ctx context.Context, item *grocery.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// Update updates a grocery item
func (m *MockGroceryRepository) Update(ctx context.Context, item *grocery.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// Delete deletes a grocery item
func (m *MockGroceryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// FindByID finds a grocery item by ID
func (m *MockGroceryRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*grocery.Item, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grocery.Item), args.Error(1)
}

// FindByUser returns a user's grocery list
func (m *MockGroceryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*grocery.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*grocery.Item), args.Error(1)
}

// FindUncheckedByName finds an unchecked item by normalized name
func (m *MockGroceryRepository) FindUncheckedByName(ctx context.Context, userID uuid.UUID, name string) (*grocery.Item, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grocery.Item), args.Error(1)
}

// DeleteChecked removes checked items
func (m *MockGroceryRepository) DeleteChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the same mock so expectations carry into transactions
func (m *MockGroceryRepository) WithTx(tx any) outbound.GroceryRepository {
	return m
}

// StubTransactionManager runs the function directly without a real transaction
type StubTransactionManager struct{}

// Transact invokes fn with a nil transaction handle
func (StubTransactionManager) Transact(ctx context.Context, fn func(tx any) error) error {
	return fn(nil)
}

// MockRecipeRepository provides a mock implementation of RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

// Create creates a recipe
func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// Update updates a recipe
func (m *MockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// Delete deletes a recipe
func (m *MockRecipeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// FindByID finds a recipe by ID
func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

// FindByUser returns a page of a user's recipes
func (m *MockRecipeRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*recipe.Recipe), args.Get(1).(int64), args.Error(2)
}

// FindByExternalID finds a saved recipe by its external catalog ID
func (m *MockRecipeRepository) FindByExternalID(ctx context.Context, userID uuid.UUID, externalID int64) (*recipe.Recipe, error) {
	args := m.Called(ctx, userID, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

// MockMealRepository provides a mock implementation of MealRepository
type MockMealRepository struct {
	mock.Mock
}

// Create creates a meal entry
func (m *MockMealRepository) Create(ctx context.Context, e *mealentry.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// Update updates a meal entry
func (m *MockMealRepository) Update(ctx context.Context, e *mealentry.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// Delete deletes a meal entry
func (m *MockMealRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// FindByID finds a meal entry by ID
func (m *MockMealRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*mealentry.Entry, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealentry.Entry), args.Error(1)
}

// FindByDay returns entries logged within [dayStart, dayEnd)
func (m *MockMealRepository) FindByDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*mealentry.Entry, error) {
	args := m.Called(ctx, userID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mealentry.Entry), args.Error(1)
}

// MockUserRepository provides a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

// Create creates a user
func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// Update updates a user
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// ExistsByEmail checks whether an email is taken
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// UpdateLastLogin records a login timestamp
func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

// Get retrieves a cached value
func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Set stores a cached value
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Delete removes a cached value
func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockTokenService provides a mock implementation of TokenService
type MockTokenService struct {
	mock.Mock
}

// Issue issues a session token
func (m *MockTokenService) Issue(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

// Verify verifies a session token
func (m *MockTokenService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
