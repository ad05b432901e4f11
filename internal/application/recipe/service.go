// Package recipe provides the application layer for the saved recipe
// collection.
package recipe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recipeCacheTTL bounds staleness for entries that outlive their
// invalidation, for example after a cache restart.
const recipeCacheTTL = time.Hour

// RecipeService implements the saved recipe use cases.
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		cache:      cache,
		logger:     logger.Named("recipe-service"),
	}
}

// SaveRecipe saves a recipe to the user's collection. Saving the same
// external recipe twice is a conflict.
func (s *RecipeService) SaveRecipe(ctx context.Context, cmd inbound.SaveRecipeCommand) (*inbound.RecipeDTO, error) {
	if cmd.ExternalID != nil {
		existing, err := s.recipeRepo.FindByExternalID(ctx, cmd.UserID, *cmd.ExternalID)
		if err != nil && err != recipe.ErrRecipeNotFound {
			return nil, errors.NewDatabaseError("check saved recipe", err)
		}
		if existing != nil {
			return nil, errors.NewConflictError("recipe already saved")
		}
	}

	ingredients := make([]recipe.Ingredient, 0, len(cmd.Ingredients))
	for _, ing := range cmd.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	entity, err := recipe.NewRecipe(cmd.UserID, cmd.Title, ingredients)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	entity.SetDetails(cmd.Summary, cmd.ImageURL, cmd.SourceURL, cmd.Instructions, cmd.ReadyInMinutes, cmd.Servings)
	entity.SetTags(cmd.Cuisines, cmd.Diets)
	if cmd.ExternalID != nil {
		entity.SetExternalID(*cmd.ExternalID)
	}
	if cmd.Nutrition != nil {
		entity.SetNutrition(recipe.Nutrition{
			Calories: cmd.Nutrition.Calories,
			Protein:  cmd.Nutrition.Protein,
			Carbs:    cmd.Nutrition.Carbs,
			Fat:      cmd.Nutrition.Fat,
			Fiber:    cmd.Nutrition.Fiber,
			Sugar:    cmd.Nutrition.Sugar,
		})
	}
	if cmd.AIGenerated {
		entity.MarkAIGenerated()
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}
	s.logEvents(entity)

	s.invalidateListCache(ctx, cmd.UserID)

	s.logger.Info("Recipe saved",
		zap.String("recipe_id", entity.ID().String()),
		zap.String("user_id", cmd.UserID.String()),
		zap.String("title", entity.Title()),
	)

	dto := inbound.ToRecipeDTO(entity)
	return &dto, nil
}

// DeleteRecipe removes a recipe the user owns.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.UserID() != userID {
		return errors.NewForbiddenError("recipe belongs to another user")
	}

	if err := s.recipeRepo.Delete(ctx, recipeID, userID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.invalidateListCache(ctx, userID)
	s.invalidateDetailCache(ctx, userID, recipeID)
	return nil
}

// GetRecipe returns one saved recipe, cache first.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*inbound.RecipeDTO, error) {
	if cached := s.cachedRecipe(ctx, userID, recipeID); cached != nil {
		return cached, nil
	}

	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.UserID() != userID {
		return nil, errors.NewForbiddenError("recipe belongs to another user")
	}

	dto := inbound.ToRecipeDTO(entity)
	s.cacheSet(ctx, detailCacheKey(userID, recipeID), &dto)
	return &dto, nil
}

// ListRecipes returns the user's collection, newest first. The default
// first page, the one the collection view requests, is served cache first;
// other pages always hit the store because invalidation only covers the
// per-user list key.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	cacheable := params.Offset() == 0 && params.Limit() == 20
	if cacheable {
		if cached := s.cachedList(ctx, userID); cached != nil {
			return cached, nil
		}
	}

	recipes, total, err := s.recipeRepo.FindByUser(ctx, userID, params.Offset(), params.Limit())
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, inbound.ToRecipeDTO(r))
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	list := &inbound.RecipeList{
		Recipes: dtos,
		Total:   total,
		Page:    page,
		PerPage: params.Limit(),
	}
	if cacheable {
		s.cacheSet(ctx, listCacheKey(userID), list)
	}
	return list, nil
}

func listCacheKey(userID uuid.UUID) string {
	return "recipes:" + userID.String()
}

func detailCacheKey(userID, recipeID uuid.UUID) string {
	return "recipe:" + userID.String() + ":" + recipeID.String()
}

// cachedRecipe returns the cached detail DTO, or nil on any miss or
// decode failure.
func (s *RecipeService) cachedRecipe(ctx context.Context, userID, recipeID uuid.UUID) *inbound.RecipeDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, detailCacheKey(userID, recipeID))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var dto inbound.RecipeDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil
	}
	return &dto
}

// cachedList returns the cached default first page of the user's
// collection, or nil on any miss or decode failure.
func (s *RecipeService) cachedList(ctx context.Context, userID uuid.UUID) *inbound.RecipeList {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, listCacheKey(userID))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var list inbound.RecipeList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return &list
}

// cacheSet serializes v into the cache. Failures only degrade to a
// repository read next time.
func (s *RecipeService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, recipeCacheTTL); err != nil {
		s.logger.Debug("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidateListCache drops the cached recipe list for a user. Cache
// misses are not errors.
func (s *RecipeService) invalidateListCache(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey(userID)); err != nil {
		s.logger.Debug("Cache invalidation failed", zap.Error(err))
	}
}

// invalidateDetailCache drops one cached recipe detail.
func (s *RecipeService) invalidateDetailCache(ctx context.Context, userID, recipeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, detailCacheKey(userID, recipeID)); err != nil {
		s.logger.Debug("Cache invalidation failed", zap.Error(err))
	}
}

// logEvents drains the recipe's pending domain events into the structured
// log.
func (s *RecipeService) logEvents(entity *recipe.Recipe) {
	for _, event := range entity.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}
