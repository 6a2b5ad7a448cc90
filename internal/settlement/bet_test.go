package settlement

import (
	"testing"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveBetProRataPayout(t *testing.T) {
	// Three bets of 100 on AWAY lose, one bet of 100 on HOME wins.
	// distributable = 300*0.95 = 285, payout = floor(100 + 285) = 385.
	pool := &model.BetPool{HomePool: 100, AwayPool: 300}
	totals := SideTotals(pool, model.ResultHome)

	winner := &model.Bet{Amount: 100, PredictedWinner: model.ResultHome}
	out := ResolveBet(winner, model.ResultHome, totals, 0.05)

	assert.Equal(t, model.BetStatusWin, out.Status)
	assert.Equal(t, int64(385), out.Payout)

	loser := &model.Bet{Amount: 100, PredictedWinner: model.ResultAway}
	out = ResolveBet(loser, model.ResultHome, totals, 0.05)

	assert.Equal(t, model.BetStatusLose, out.Status)
	assert.Equal(t, int64(0), out.Payout)
}

func TestResolveBetSplitWinners(t *testing.T) {
	// 150 + 50 on HOME against 300 on AWAY. distributable = 285.
	pool := &model.BetPool{HomePool: 200, AwayPool: 300}
	totals := SideTotals(pool, model.ResultHome)

	big := ResolveBet(&model.Bet{Amount: 150, PredictedWinner: model.ResultHome}, model.ResultHome, totals, 0.05)
	small := ResolveBet(&model.Bet{Amount: 50, PredictedWinner: model.ResultHome}, model.ResultHome, totals, 0.05)

	// floor(150 + 285*150/200) = floor(363.75) = 363
	// floor(50 + 285*50/200) = floor(121.25) = 121
	assert.Equal(t, int64(363), big.Payout)
	assert.Equal(t, int64(121), small.Payout)

	// Conservation: payouts never exceed total stakes; the edge plus the
	// truncation remainder stays with the house.
	totalStakes := pool.HomePool + pool.AwayPool
	totalPaid := big.Payout + small.Payout
	assert.LessOrEqual(t, totalPaid, totalStakes)
	shortfall := totalStakes - totalPaid
	assert.GreaterOrEqual(t, shortfall, int64(float64(totals.LosingStake)*0.05))
}

func TestResolveBetDrawLosesAll(t *testing.T) {
	pool := &model.BetPool{HomePool: 400, AwayPool: 600}
	totals := SideTotals(pool, model.ResultDraw)

	assert.Equal(t, int64(0), totals.WinningStake)
	assert.Equal(t, int64(1000), totals.LosingStake)

	out := ResolveBet(&model.Bet{Amount: 400, PredictedWinner: model.ResultHome}, model.ResultDraw, totals, 0.05)
	assert.Equal(t, model.BetStatusLose, out.Status)
}

func TestResolveBetNoLosersReturnsStake(t *testing.T) {
	// Everyone on the winning side: nothing to distribute, stakes come back.
	pool := &model.BetPool{HomePool: 500, AwayPool: 0}
	totals := SideTotals(pool, model.ResultHome)

	out := ResolveBet(&model.Bet{Amount: 500, PredictedWinner: model.ResultHome}, model.ResultHome, totals, 0.05)
	assert.Equal(t, model.BetStatusWin, out.Status)
	assert.Equal(t, int64(500), out.Payout)
}

func TestSideTotals(t *testing.T) {
	pool := &model.BetPool{HomePool: 700, AwayPool: 200}

	home := SideTotals(pool, model.ResultHome)
	assert.Equal(t, PoolTotals{WinningStake: 700, LosingStake: 200}, home)

	away := SideTotals(pool, model.ResultAway)
	assert.Equal(t, PoolTotals{WinningStake: 200, LosingStake: 700}, away)
}
