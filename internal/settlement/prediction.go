package settlement

import "github.com/ballgenius/ballgenius-backend/internal/model"

// streakBonuses maps a streak milestone to its one-off bonus. Only the exact
// milestone pays; streak 4 pays nothing extra.
var streakBonuses = map[int]int64{
	3:  25,
	5:  50,
	7:  100,
	10: 200,
	15: 500,
	20: 1000,
}

// StreakBonus returns the bonus for reaching the given streak, or 0.
func StreakBonus(streak int) int64 {
	return streakBonuses[streak]
}

// PredictionRules carries the configured point constants.
type PredictionRules struct {
	WinPoints     int64
	PerfectPoints int64
}

// PredictionOutcome is the full mutation set for one prediction: the row's new
// status and earned points, the ledger categories to append, and the user's
// new streak counters.
type PredictionOutcome struct {
	Status       model.PredictionStatus
	PointsEarned int64
	PointType    model.PointType
	StreakBonus  int64
	NewStreak    int
	NewMaxStreak int
}

// Won reports whether the prediction hit.
func (o PredictionOutcome) Won() bool {
	return o.Status == model.PredictionStatusWin
}

// TotalPoints is everything credited to the user for this prediction.
func (o PredictionOutcome) TotalPoints() int64 {
	return o.PointsEarned + o.StreakBonus
}

// ResolvePrediction evaluates one pending prediction against the final score.
// currentStreak/maxStreak are the user's counters before this resolution.
//
// A correct winner pick earns the win constant; a correct exact score replaces
// it with the perfect constant. Reaching a streak milestone adds a separately
// tagged bonus. A miss resets the streak and earns nothing.
func ResolvePrediction(p *model.Prediction, homeScore, awayScore int, currentStreak, maxStreak int, rules PredictionRules) PredictionOutcome {
	winner := DetermineWinner(homeScore, awayScore)

	if p.PredictedWinner != winner {
		return PredictionOutcome{
			Status:       model.PredictionStatusLose,
			PointType:    model.PointTypePredictionWin,
			NewStreak:    0,
			NewMaxStreak: maxStreak,
		}
	}

	points := rules.WinPoints
	pointType := model.PointTypePredictionWin
	if p.PredictedHomeScore != nil && p.PredictedAwayScore != nil &&
		*p.PredictedHomeScore == homeScore && *p.PredictedAwayScore == awayScore {
		points = rules.PerfectPoints
		pointType = model.PointTypePredictionPerfect
	}

	newStreak := currentStreak + 1
	newMax := maxStreak
	if newStreak > newMax {
		newMax = newStreak
	}

	return PredictionOutcome{
		Status:       model.PredictionStatusWin,
		PointsEarned: points,
		PointType:    pointType,
		StreakBonus:  StreakBonus(newStreak),
		NewStreak:    newStreak,
		NewMaxStreak: newMax,
	}
}
