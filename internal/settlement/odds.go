package settlement

// DefaultOdds is the even-money quote used while a pool side is empty. It must
// sit inside the clamp window, otherwise an empty pool would quote below the
// configured floor.
const DefaultOdds = 2.0

type OddsConfig struct {
	HouseEdge float64
	MinOdds   float64
	MaxOdds   float64
}

// ComputeOdds derives pari-mutuel quotes from the aggregate stakes. The house
// edge comes off the combined pool before it is divided by each side's stake.
// Deterministic and side-effect free; called on every placement and usable to
// audit payouts after the fact.
func ComputeOdds(homePool, awayPool int64, cfg OddsConfig) (homeOdds, awayOdds float64) {
	if homePool == 0 && awayPool == 0 {
		return DefaultOdds, DefaultOdds
	}

	effective := float64(homePool+awayPool) * (1 - cfg.HouseEdge)

	homeOdds = DefaultOdds
	if homePool > 0 {
		homeOdds = effective / float64(homePool)
	}
	awayOdds = DefaultOdds
	if awayPool > 0 {
		awayOdds = effective / float64(awayPool)
	}

	return clamp(homeOdds, cfg), clamp(awayOdds, cfg)
}

func clamp(odds float64, cfg OddsConfig) float64 {
	if odds < cfg.MinOdds {
		return cfg.MinOdds
	}
	if odds > cfg.MaxOdds {
		return cfg.MaxOdds
	}
	return odds
}
