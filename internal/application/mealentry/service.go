// Package mealentry provides the application layer for food tracking.
package mealentry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// summaryCacheTTL is deliberately short: goal updates do not invalidate
// cached summaries, so the TTL bounds how stale a summary's goals can be.
const summaryCacheTTL = 5 * time.Minute

// MealService implements the food tracking use cases.
type MealService struct {
	mealRepo outbound.MealRepository
	userRepo outbound.UserRepository
	cache    outbound.CacheRepository
	logger   *zap.Logger
}

// NewMealService creates a new meal service.
func NewMealService(
	mealRepo outbound.MealRepository,
	userRepo outbound.UserRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.MealService {
	return &MealService{
		mealRepo: mealRepo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger.Named("meal-service"),
	}
}

// LogMeal records a food entry.
func (s *MealService) LogMeal(ctx context.Context, cmd inbound.LogMealCommand) (*inbound.MealEntryDTO, error) {
	entry, err := mealentry.NewEntry(
		cmd.UserID,
		cmd.Description,
		mealentry.MealType(cmd.MealType),
		toMacros(cmd.Macros),
		mealentry.Source(cmd.Source),
		cmd.LoggedAt,
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	if cmd.Confidence != nil {
		if err := entry.SetConfidence(*cmd.Confidence); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.mealRepo.Create(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("create meal entry", err)
	}
	s.logEvents(entry)
	s.invalidateSummaryCache(ctx, cmd.UserID, entry.LoggedAt())

	s.logger.Info("Meal logged",
		zap.String("entry_id", entry.ID().String()),
		zap.String("user_id", cmd.UserID.String()),
		zap.String("meal_type", string(entry.MealType())),
		zap.Float64("calories", entry.Macros().Calories),
	)

	dto := inbound.ToMealEntryDTO(entry)
	return &dto, nil
}

// CorrectMeal replaces the description, macros, and optionally the meal
// classification of an existing entry.
func (s *MealService) CorrectMeal(ctx context.Context, cmd inbound.CorrectMealCommand) (*inbound.MealEntryDTO, error) {
	entry, err := s.mealRepo.FindByID(ctx, cmd.EntryID, cmd.UserID)
	if err != nil {
		return nil, errors.NewEntryNotFoundError(cmd.EntryID.String())
	}

	if err := entry.Correct(cmd.Description, toMacros(cmd.Macros)); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	if cmd.MealType != "" {
		if err := entry.Reclassify(mealentry.MealType(cmd.MealType)); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.mealRepo.Update(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("update meal entry", err)
	}
	s.logEvents(entry)
	s.invalidateSummaryCache(ctx, cmd.UserID, entry.LoggedAt())

	dto := inbound.ToMealEntryDTO(entry)
	return &dto, nil
}

// DeleteMeal removes an entry the user owns.
func (s *MealService) DeleteMeal(ctx context.Context, entryID, userID uuid.UUID) error {
	entry, err := s.mealRepo.FindByID(ctx, entryID, userID)
	if err != nil {
		return errors.NewEntryNotFoundError(entryID.String())
	}

	if err := s.mealRepo.Delete(ctx, entryID, userID); err != nil {
		return errors.NewDatabaseError("delete meal entry", err)
	}
	s.invalidateSummaryCache(ctx, userID, entry.LoggedAt())
	return nil
}

// GetDailySummary aggregates the entries for one calendar day, in the
// day's own wall clock, against the user's macro goals when set. Summaries
// are served cache first; logging, correcting, and deleting entries all
// invalidate the affected day.
func (s *MealService) GetDailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*inbound.DailySummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if cached := s.cachedSummary(ctx, userID, dayStart); cached != nil {
		return cached, nil
	}

	entries, err := s.mealRepo.FindByDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, errors.NewDatabaseError("load meal entries", err)
	}

	summary := &inbound.DailySummary{
		Date:    dayStart.Format("2006-01-02"),
		ByMeal:  make(map[string][]inbound.MealEntryDTO),
		Entries: len(entries),
	}

	var totals mealentry.Macros
	for _, entry := range entries {
		totals = totals.Add(entry.Macros())
		meal := string(entry.MealType())
		summary.ByMeal[meal] = append(summary.ByMeal[meal], inbound.ToMealEntryDTO(entry))
	}
	summary.Totals = inbound.MacrosDTO{
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fat:      totals.Fat,
		Fiber:    totals.Fiber,
		Sugar:    totals.Sugar,
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err == nil && u.Goals() != nil {
		g := u.Goals()
		summary.Goals = &inbound.MacrosDTO{
			Calories: g.Calories,
			Protein:  g.Protein,
			Carbs:    g.Carbs,
			Fat:      g.Fat,
		}
	}

	s.cacheSummary(ctx, userID, dayStart, summary)
	return summary, nil
}

func summaryCacheKey(userID uuid.UUID, day time.Time) string {
	return "summary:" + userID.String() + ":" + day.Format("2006-01-02")
}

// cachedSummary returns the cached summary for a day, or nil on any miss
// or decode failure.
func (s *MealService) cachedSummary(ctx context.Context, userID uuid.UUID, day time.Time) *inbound.DailySummary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, summaryCacheKey(userID, day))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var summary inbound.DailySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

// cacheSummary stores a computed summary. Failures only degrade to a
// recomputation next time.
func (s *MealService) cacheSummary(ctx context.Context, userID uuid.UUID, day time.Time, summary *inbound.DailySummary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKey(userID, day), raw, summaryCacheTTL); err != nil {
		s.logger.Debug("Cache write failed", zap.Error(err))
	}
}

// invalidateSummaryCache drops the cached summary for the day an entry
// landed on.
func (s *MealService) invalidateSummaryCache(ctx context.Context, userID uuid.UUID, loggedAt time.Time) {
	if s.cache == nil {
		return
	}
	day := time.Date(loggedAt.Year(), loggedAt.Month(), loggedAt.Day(), 0, 0, 0, 0, loggedAt.Location())
	if err := s.cache.Delete(ctx, summaryCacheKey(userID, day)); err != nil {
		s.logger.Debug("Cache invalidation failed", zap.Error(err))
	}
}

// logEvents drains the entry's pending domain events into the structured
// log.
func (s *MealService) logEvents(entry *mealentry.Entry) {
	for _, event := range entry.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

func toMacros(m inbound.MacrosDTO) mealentry.Macros {
	return mealentry.Macros{
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Fiber:    m.Fiber,
		Sugar:    m.Sugar,
	}
}
