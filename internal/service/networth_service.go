package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// Owner bucket labels. Every holding lands in a member bucket or the
// catch-all; the Total bucket mirrors the grand total.
const (
	OwnerCatchAll = "Otros"
	OwnerTotalKey = "Total"
	prefetchLimit = 4
)

// NetWorthResult is the outcome of one valuation pass: the grand total in
// local currency, the holdings with their transient valuations attached, and
// the per-owner buckets.
type NetWorthResult struct {
	TotalNetWorth   float64               `json:"totalNetWorth"`
	Holdings        []model.ValuedHolding `json:"holdings"`
	NetWorthByOwner map[string]float64    `json:"netWorthByOwner"`
}

// NetWorthService values the household's holdings through the pricing
// gateway. Each call is a stateless pass over a snapshot of raw holdings;
// the only shared state is the gateway's rate/price cache.
type NetWorthService struct {
	holdingRepo *repository.HoldingRepository
	gateway     *pricing.Gateway
	members     []string
}

// NewNetWorthService creates a new NetWorthService. members seeds the
// per-owner buckets with the known household labels.
func NewNetWorthService(
	holdingRepo *repository.HoldingRepository,
	gateway *pricing.Gateway,
	members []string,
) *NetWorthService {
	return &NetWorthService{
		holdingRepo: holdingRepo,
		gateway:     gateway,
		members:     members,
	}
}

// GetNetWorth loads the current holdings snapshot and values it.
func (s *NetWorthService) GetNetWorth(ctx context.Context) (NetWorthResult, error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return NetWorthResult{}, err
	}
	return s.CalculateNetWorth(ctx, holdings), nil
}

// CalculateNetWorth values a snapshot of raw holdings.
//
// The exchange rate is resolved once, before any holding is valued, so every
// holding of the pass sees the same rate and the per-owner buckets sum
// exactly to the grand total. Holdings with quantity <= 0 are excluded.
// Valuation branches:
//   - base currency ARS: local value = quantity
//   - base currency USD: USD value = quantity
//   - ticker-priced: unit price via the gateway; USD-denominated when the
//     ticker is in the known USD set or the asset-type label says so
//   - anything else contributes zero but stays in the output for display
//
// Pricing failures degrade inside the gateway; this function cannot fail on
// data quality. It accepts only raw holdings; valued output can never be
// fed back in without an explicit conversion.
func (s *NetWorthService) CalculateNetWorth(ctx context.Context, holdings []model.Holding) NetWorthResult {
	rate := s.gateway.USDExchangeRate(ctx)

	s.prefetchPrices(ctx, holdings)

	result := NetWorthResult{
		Holdings:        []model.ValuedHolding{},
		NetWorthByOwner: s.seedOwnerBuckets(),
	}

	for _, holding := range holdings {
		if holding.Quantity <= 0 {
			continue
		}

		valueLocal, valueUSD := s.valueHolding(ctx, holding, rate)

		result.TotalNetWorth += valueLocal
		result.Holdings = append(result.Holdings, model.ValuedHolding{
			Holding:    holding,
			ValueLocal: valueLocal,
			ValueUSD:   valueUSD,
		})

		owner := holding.Owner
		if !s.isKnownMember(owner) {
			owner = OwnerCatchAll
		}
		result.NetWorthByOwner[owner] += valueLocal
		result.NetWorthByOwner[OwnerTotalKey] += valueLocal
	}

	return result
}

func (s *NetWorthService) valueHolding(ctx context.Context, holding model.Holding, rate float64) (valueLocal, valueUSD float64) {
	switch {
	case holding.BaseCurrency == "ARS":
		return holding.Quantity, holding.Quantity / rate

	case holding.BaseCurrency == "USD":
		return holding.Quantity * rate, holding.Quantity

	case holding.PricingTicker() != "":
		ticker := holding.PricingTicker()
		price := s.gateway.StockPrice(ctx, ticker)

		if pricing.IsUSDDenominatedTicker(ticker) || holding.IsUSDDenominatedType() {
			valueUSD = holding.Quantity * price
			return valueUSD * rate, valueUSD
		}
		valueLocal = holding.Quantity * price
		return valueLocal, valueLocal / rate

	default:
		// No recognized currency and no ticker: zero contribution, but the
		// holding stays visible in the valued output.
		return 0, 0
	}
}

// prefetchPrices warms the gateway's price memo for all distinct tickers of
// the pass. Lookups are independent, so they run concurrently; the gateway's
// single-flight keyed memo makes duplicate fetches impossible.
func (s *NetWorthService) prefetchPrices(ctx context.Context, holdings []model.Holding) {
	seen := make(map[string]bool)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(prefetchLimit)

	for _, holding := range holdings {
		if holding.Quantity <= 0 || holding.BaseCurrency == "ARS" || holding.BaseCurrency == "USD" {
			continue
		}
		ticker := holding.PricingTicker()
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true

		group.Go(func() error {
			s.gateway.StockPrice(groupCtx, ticker)
			return nil
		})
	}

	// Lookups never return errors; failures degrade inside the gateway.
	_ = group.Wait()
}

func (s *NetWorthService) seedOwnerBuckets() map[string]float64 {
	buckets := make(map[string]float64, len(s.members)+2)
	for _, member := range s.members {
		buckets[member] = 0
	}
	buckets[OwnerCatchAll] = 0
	buckets[OwnerTotalKey] = 0
	return buckets
}

func (s *NetWorthService) isKnownMember(owner string) bool {
	for _, member := range s.members {
		if member == owner {
			return true
		}
	}
	return false
}
