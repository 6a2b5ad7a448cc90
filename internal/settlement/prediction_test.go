package settlement

import (
	"testing"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

var testRules = PredictionRules{WinPoints: 50, PerfectPoints: 100}

func intPtr(v int) *int { return &v }

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		home, away int
		want       model.PredictedResult
	}{
		{5, 3, model.ResultHome},
		{2, 7, model.ResultAway},
		{0, 0, model.ResultDraw},
		{4, 4, model.ResultDraw},
	}
	for _, tt := range tests {
		if got := DetermineWinner(tt.home, tt.away); got != tt.want {
			t.Fatalf("DetermineWinner(%d, %d) = %v, want %v", tt.home, tt.away, got, tt.want)
		}
	}
}

func TestResolvePredictionWin(t *testing.T) {
	p := &model.Prediction{PredictedWinner: model.ResultHome}

	out := ResolvePrediction(p, 5, 3, 0, 0, testRules)

	assert.Equal(t, model.PredictionStatusWin, out.Status)
	assert.Equal(t, int64(50), out.PointsEarned)
	assert.Equal(t, model.PointTypePredictionWin, out.PointType)
	assert.Equal(t, int64(0), out.StreakBonus)
	assert.Equal(t, 1, out.NewStreak)
	assert.Equal(t, 1, out.NewMaxStreak)
}

func TestResolvePredictionPerfectScoreOverridesBase(t *testing.T) {
	p := &model.Prediction{
		PredictedWinner:    model.ResultHome,
		PredictedHomeScore: intPtr(5),
		PredictedAwayScore: intPtr(3),
	}

	out := ResolvePrediction(p, 5, 3, 0, 0, testRules)

	// 100, not 50+100.
	assert.Equal(t, int64(100), out.PointsEarned)
	assert.Equal(t, model.PointTypePredictionPerfect, out.PointType)
}

func TestResolvePredictionWrongExactScoreStillWins(t *testing.T) {
	p := &model.Prediction{
		PredictedWinner:    model.ResultHome,
		PredictedHomeScore: intPtr(6),
		PredictedAwayScore: intPtr(2),
	}

	out := ResolvePrediction(p, 5, 3, 0, 0, testRules)

	assert.Equal(t, model.PredictionStatusWin, out.Status)
	assert.Equal(t, int64(50), out.PointsEarned)
	assert.Equal(t, model.PointTypePredictionWin, out.PointType)
}

func TestResolvePredictionStreakMilestone(t *testing.T) {
	p := &model.Prediction{PredictedWinner: model.ResultAway}

	// Two straight wins already; this one makes three.
	out := ResolvePrediction(p, 1, 4, 2, 2, testRules)

	assert.Equal(t, int64(25), out.StreakBonus)
	assert.Equal(t, 3, out.NewStreak)
	assert.Equal(t, int64(75), out.TotalPoints())
}

func TestResolvePredictionLoseResetsStreak(t *testing.T) {
	p := &model.Prediction{PredictedWinner: model.ResultAway}

	out := ResolvePrediction(p, 5, 3, 6, 9, testRules)

	assert.Equal(t, model.PredictionStatusLose, out.Status)
	assert.Equal(t, int64(0), out.PointsEarned)
	assert.Equal(t, int64(0), out.StreakBonus)
	assert.Equal(t, 0, out.NewStreak)
	assert.Equal(t, 9, out.NewMaxStreak, "max streak untouched on a loss")
}

func TestResolvePredictionMaxStreakFollowsNewRecord(t *testing.T) {
	p := &model.Prediction{PredictedWinner: model.ResultHome}

	out := ResolvePrediction(p, 3, 1, 9, 9, testRules)

	assert.Equal(t, 10, out.NewStreak)
	assert.Equal(t, 10, out.NewMaxStreak)
	assert.Equal(t, int64(200), out.StreakBonus)
}

func TestStreakBonusMilestonesOnly(t *testing.T) {
	wants := map[int]int64{
		1: 0, 2: 0, 3: 25, 4: 0, 5: 50, 6: 0, 7: 100,
		8: 0, 10: 200, 15: 500, 20: 1000, 21: 0,
	}
	for streak, want := range wants {
		if got := StreakBonus(streak); got != want {
			t.Fatalf("StreakBonus(%d) = %d, want %d", streak, got, want)
		}
	}
}
