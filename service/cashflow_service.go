package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cashflow/models"

	log "github.com/sirupsen/logrus"
)

// cashflowService implements the CashflowService interface. It holds no
// mutable state; every projection call is a pure function of the stored
// commitments, current balances and the requested window, so concurrent
// calls need no coordination.
type cashflowService struct {
	accounts AccountRepository
	families FamilyRepository
	sources  []eventSource
	currency string
	now      func() time.Time
}

// NewCashflowService creates a new cashflow projection service
func NewCashflowService(
	accounts AccountRepository,
	rules RecurringRuleRepository,
	funding GoalFundingRuleRepository,
	families FamilyRepository,
	currency string,
) CashflowService {
	return &cashflowService{
		accounts: accounts,
		families: families,
		// Registration order fixes the inter-source ordering of same-day
		// events.
		sources: []eventSource{
			&recurringRuleSource{rules: rules},
			&goalFundingSource{funding: funding},
		},
		currency: currency,
		now:      time.Now,
	}
}

// GenerateProjection produces a day-by-day cashflow forecast over the next
// days days. Balances and all event sources are fetched concurrently; a
// failing event source contributes no events while the rest of the
// projection proceeds.
func (s *cashflowService) GenerateProjection(ctx context.Context, days int, filters models.ProjectionFilters, userID string) (*models.CashflowProjection, error) {
	if days <= 0 {
		return nil, fmt.Errorf("projection window must be positive, got %d days", days)
	}

	filter, err := s.resolveScope(ctx, filters, userID)
	if err != nil {
		return nil, err
	}

	windowStart := models.Midnight(s.now())
	windowEnd := windowStart.AddDate(0, 0, days)

	var wg sync.WaitGroup
	var balances []*models.AccountBalance
	var balanceErr error
	sourceEvents := make([][]*models.CashflowEvent, len(s.sources))

	wg.Add(1)
	go func() {
		defer wg.Done()
		balances, balanceErr = s.accounts.GetBalances(ctx, filter)
	}()

	for i, source := range s.sources {
		wg.Add(1)
		go func(i int, source eventSource) {
			defer wg.Done()
			events, err := source.events(ctx, filter, windowStart, windowEnd)
			if err != nil {
				// Degrade per source: a transient failure in one repository
				// must not block the forecasts the other sources can still
				// provide.
				log.WithError(err).WithField("source", source.name()).Error("Event source failed, projecting without it")
				return
			}
			sourceEvents[i] = events
		}(i, source)
	}
	wg.Wait()

	if balanceErr != nil {
		return nil, fmt.Errorf("failed to fetch account balances: %w", balanceErr)
	}

	// Re-establish the canonical order after the concurrent fetch:
	// concatenation follows source registration order, then a stable sort by
	// date keeps that order within each day regardless of completion order.
	var events []*models.CashflowEvent
	for _, se := range sourceEvents {
		events = append(events, se...)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	var startingBalance int64
	for _, balance := range balances {
		startingBalance += balance.BalanceCents
	}

	summaries := buildDailySummaries(events, startingBalance, windowStart, windowEnd, s.currency)

	period := &models.CashflowPeriod{
		StartDate:            windowStart,
		EndDate:              windowEnd,
		DailySummaries:       summaries,
		StartingBalanceCents: startingBalance,
		EndingBalanceCents:   startingBalance,
		Currency:             s.currency,
	}
	// Period totals are sums of the daily totals, never recomputed from the
	// raw events.
	for _, day := range summaries {
		period.TotalIncomeCents += day.TotalIncomeCents
		period.TotalExpenseCents += day.TotalExpenseCents
		period.NetFlowCents += day.NetFlowCents
	}
	if len(summaries) > 0 {
		period.EndingBalanceCents = summaries[len(summaries)-1].RunningBalanceCents
	}

	return &models.CashflowProjection{
		CurrentBalances: balances,
		Period:          period,
		Filters:         filters,
		GeneratedAt:     s.now().UTC(),
	}, nil
}

// GetCurrentBalances returns the user's current account balances for the
// requested scope
func (s *cashflowService) GetCurrentBalances(ctx context.Context, scope models.Scope, userID string) ([]*models.AccountBalance, error) {
	filter, err := s.resolveScope(ctx, models.ProjectionFilters{Scope: scope}, userID)
	if err != nil {
		return nil, err
	}

	balances, err := s.accounts.GetBalances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account balances: %w", err)
	}
	return balances, nil
}

// resolveScope validates the requested scope and resolves the caller's
// family membership once per call. Explicitly requesting family scope
// without belonging to a family fails with ErrNoFamily; the combined default
// scope quietly narrows to personal instead.
func (s *cashflowService) resolveScope(ctx context.Context, filters models.ProjectionFilters, userID string) (models.ScopeFilter, error) {
	filter := models.ScopeFilter{
		Scope:      filters.Scope,
		UserID:     userID,
		AccountID:  filters.AccountID,
		AccountIDs: filters.AccountIDs,
	}

	switch filters.Scope {
	case models.ScopePersonal:
		return filter, nil
	case models.ScopeFamily, "":
		familyID, err := s.families.GetFamilyIDByUser(ctx, userID)
		if err != nil {
			return models.ScopeFilter{}, fmt.Errorf("failed to resolve family membership: %w", err)
		}
		if familyID == "" && filters.Scope == models.ScopeFamily {
			return models.ScopeFilter{}, ErrNoFamily
		}
		filter.FamilyID = familyID
		return filter, nil
	default:
		return models.ScopeFilter{}, fmt.Errorf("unknown scope %q", filters.Scope)
	}
}
