package settlement

import (
	"math"

	"github.com/ballgenius/ballgenius-backend/internal/model"
)

// PoolTotals are the realized side totals for one game, read from the bet_pools
// row. Using the stored totals rather than summing pending rows keeps the
// payout denominator stable when settlement is re-run over a partial batch.
type PoolTotals struct {
	WinningStake int64
	LosingStake  int64
}

// SideTotals splits the pool by the realized result. A draw has no winning
// side: every moneyline bet loses and the whole pool stays with the house.
func SideTotals(pool *model.BetPool, winner model.PredictedResult) PoolTotals {
	switch winner {
	case model.ResultHome:
		return PoolTotals{WinningStake: pool.HomePool, LosingStake: pool.AwayPool}
	case model.ResultAway:
		return PoolTotals{WinningStake: pool.AwayPool, LosingStake: pool.HomePool}
	default:
		return PoolTotals{WinningStake: 0, LosingStake: pool.HomePool + pool.AwayPool}
	}
}

// BetOutcome is the mutation set for one bet.
type BetOutcome struct {
	Status model.BetStatus
	Payout int64
}

// ResolveBet settles one pending bet against the realized result. Winners get
// their stake back plus a pro-rata share of the losing pool net of the house
// edge; the whole payout is floored, so truncation remainders stay with the
// house. Losers get nothing here (the stake was debited at placement).
func ResolveBet(b *model.Bet, winner model.PredictedResult, totals PoolTotals, houseEdge float64) BetOutcome {
	if b.PredictedWinner != winner || totals.WinningStake <= 0 {
		return BetOutcome{Status: model.BetStatusLose}
	}

	distributable := float64(totals.LosingStake) * (1 - houseEdge)
	share := distributable * float64(b.Amount) / float64(totals.WinningStake)
	payout := int64(math.Floor(float64(b.Amount) + share))

	return BetOutcome{Status: model.BetStatusWin, Payout: payout}
}
