// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/google/uuid"
)

// GroceryRepository defines the interface for grocery list persistence.
type GroceryRepository interface {
	Create(ctx context.Context, item *grocery.Item) error
	Update(ctx context.Context, item *grocery.Item) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*grocery.Item, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*grocery.Item, error)

	// FindUncheckedByName looks up an unchecked item by normalized name
	// for the merge policy. Implementations must lock the row for update
	// when called inside a transaction.
	FindUncheckedByName(ctx context.Context, userID uuid.UUID, name string) (*grocery.Item, error)

	DeleteChecked(ctx context.Context, userID uuid.UUID) (int64, error)

	// WithTx returns a repository bound to the given transaction handle.
	// The handle type is owned by the persistence layer.
	WithTx(tx any) GroceryRepository
}

// TransactionManager runs fn inside a database transaction and hands it
// the transaction handle for repository binding.
type TransactionManager interface {
	Transact(ctx context.Context, fn func(tx any) error) error
}

// RecipeRepository defines the interface for saved recipe persistence.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int64, error)
	FindByExternalID(ctx context.Context, userID uuid.UUID, externalID int64) (*recipe.Recipe, error)
}

// MealRepository defines the interface for meal entry persistence.
type MealRepository interface {
	Create(ctx context.Context, e *mealentry.Entry) error
	Update(ctx context.Context, e *mealentry.Entry) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*mealentry.Entry, error)

	// FindByDay returns entries whose logged time falls in [dayStart, dayEnd).
	FindByDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*mealentry.Entry, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
