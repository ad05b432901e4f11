// Package grocery provides the application layer for grocery list
// management, including the recipe import merge policy.
package grocery

import (
	"context"
	"strings"

	"github.com/fuelapp/v1/internal/domain/grocery"
	domainrecipe "github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroceryService implements the grocery list use cases.
type GroceryService struct {
	groceryRepo outbound.GroceryRepository
	recipeRepo  outbound.RecipeRepository
	txManager   outbound.TransactionManager
	logger      *zap.Logger
}

// NewGroceryService creates a new grocery service.
func NewGroceryService(
	groceryRepo outbound.GroceryRepository,
	recipeRepo outbound.RecipeRepository,
	txManager outbound.TransactionManager,
	logger *zap.Logger,
) inbound.GroceryService {
	return &GroceryService{
		groceryRepo: groceryRepo,
		recipeRepo:  recipeRepo,
		txManager:   txManager,
		logger:      logger.Named("grocery-service"),
	}
}

// AddItem adds a single item to the user's list.
func (s *GroceryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.GroceryItemDTO, error) {
	item, err := grocery.NewItem(cmd.UserID, cmd.Name, cmd.Quantity, cmd.Unit, grocery.Category(cmd.Category))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.groceryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create grocery item", err)
	}
	s.logEvents(item)

	s.logger.Info("Grocery item added",
		zap.String("item_id", item.ID().String()),
		zap.String("user_id", cmd.UserID.String()),
		zap.String("category", string(item.Category())),
	)

	dto := inbound.ToGroceryItemDTO(item)
	return &dto, nil
}

// UpdateItem applies a partial update to an item the user owns.
func (s *GroceryService) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) (*inbound.GroceryItemDTO, error) {
	item, err := s.groceryRepo.FindByID(ctx, cmd.ItemID, cmd.UserID)
	if err != nil {
		return nil, errors.NewItemNotFoundError(cmd.ItemID.String())
	}

	if cmd.Checked != nil {
		item.SetChecked(*cmd.Checked)
	}
	if cmd.Quantity != nil {
		if err := item.SetQuantity(cmd.Quantity); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.groceryRepo.Update(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update grocery item", err)
	}
	s.logEvents(item)

	dto := inbound.ToGroceryItemDTO(item)
	return &dto, nil
}

// DeleteItem removes an item the user owns.
func (s *GroceryService) DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error {
	if err := s.groceryRepo.Delete(ctx, itemID, userID); err != nil {
		return errors.NewDatabaseError("delete grocery item", err)
	}
	return nil
}

// ClearChecked deletes every checked item on the user's list and returns
// how many rows were removed.
func (s *GroceryService) ClearChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := s.groceryRepo.DeleteChecked(ctx, userID)
	if err != nil {
		return 0, errors.NewDatabaseError("clear checked items", err)
	}

	s.logger.Info("Checked items cleared",
		zap.String("user_id", userID.String()),
		zap.Int64("removed", removed),
	)

	return removed, nil
}

// ListItems returns the user's full list, ordered by category then
// creation time.
func (s *GroceryService) ListItems(ctx context.Context, userID uuid.UUID) ([]inbound.GroceryItemDTO, error) {
	items, err := s.groceryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list grocery items", err)
	}

	dtos := make([]inbound.GroceryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, inbound.ToGroceryItemDTO(item))
	}
	return dtos, nil
}

// ImportFromRecipe parses each ingredient line of a saved recipe and
// merges the results into the user's list.
//
// The merge policy: an unchecked existing item with the same normalized
// name absorbs the incoming quantity when the units agree, or is left
// untouched when they do not; both count as merged. Anything else becomes
// a new row carrying recipe provenance. The whole import runs in one
// transaction with the matched rows locked, so concurrent imports cannot
// create duplicate rows for the same name.
func (s *GroceryService) ImportFromRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*inbound.ImportResult, error) {
	rec, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if rec.UserID() != userID {
		return nil, errors.NewForbiddenError("recipe belongs to another user")
	}

	result := &inbound.ImportResult{}

	err = s.txManager.Transact(ctx, func(tx any) error {
		repo := s.groceryRepo.WithTx(tx)

		for _, ing := range rec.Ingredients() {
			if err := s.importIngredient(ctx, repo, userID, rec, ing, result); err != nil {
				// One bad line must not sink the rest of the import.
				s.logger.Warn("Skipping unparseable ingredient",
					zap.String("recipe_id", recipeID.String()),
					zap.String("line", ing.Line()),
					zap.Error(err),
				)
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewDatabaseError("import recipe ingredients", err)
	}

	s.logger.Info("Recipe imported to grocery list",
		zap.String("recipe_id", recipeID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("added", result.Added),
		zap.Int("merged", result.Merged),
	)

	return result, nil
}

// importIngredient handles one ingredient record inside the import
// transaction.
func (s *GroceryService) importIngredient(
	ctx context.Context,
	repo outbound.GroceryRepository,
	userID uuid.UUID,
	rec *domainrecipe.Recipe,
	ing domainrecipe.Ingredient,
	result *inbound.ImportResult,
) error {
	incoming := incomingIngredient(ing)
	name := strings.ToLower(strings.TrimSpace(incoming.Name))
	if name == "" {
		return grocery.ErrEmptyName
	}

	existing, err := repo.FindUncheckedByName(ctx, userID, name)
	if err != nil && err != grocery.ErrItemNotFound {
		return err
	}

	if existing != nil {
		// Quantities add only when the units agree and the incoming record
		// actually has an amount. Otherwise the row stays as it is, which
		// still counts as a merge: the ingredient is already on the list.
		if existing.SameUnit(grocery.NormalizeUnit(incoming.Unit)) && incoming.Quantity != nil {
			existing.AbsorbQuantity(*incoming.Quantity)
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			s.logEvents(existing)
		}
		result.Merged++
		return nil
	}

	item, err := grocery.NewItemFromRecipe(userID, incoming, rec.ID(), rec.Title())
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, item); err != nil {
		return err
	}
	s.logEvents(item)
	result.Added++
	return nil
}

// incomingIngredient converts a recipe ingredient record into the merge
// policy's input. The structured name, amount and unit win when the record
// has them; only a record without a structured name falls back to parsing
// its free-text line.
func incomingIngredient(ing domainrecipe.Ingredient) grocery.ParsedIngredient {
	name := strings.TrimSpace(ing.Name)
	if name == "" {
		return grocery.ParseIngredient(ing.Line())
	}
	return grocery.ParsedIngredient{
		Quantity: ing.Amount,
		Unit:     ing.Unit,
		Name:     name,
	}
}

// logEvents drains the item's pending domain events into the structured
// log.
func (s *GroceryService) logEvents(item *grocery.Item) {
	for _, event := range item.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}
