// Package settlement holds the pure resolution rules for predictions and
// bets. Nothing here touches the database; the repository layer applies the
// outcomes transactionally.
package settlement

import "github.com/ballgenius/ballgenius-backend/internal/model"

// DetermineWinner maps a final score to the realized result.
func DetermineWinner(homeScore, awayScore int) model.PredictedResult {
	switch {
	case homeScore > awayScore:
		return model.ResultHome
	case awayScore > homeScore:
		return model.ResultAway
	default:
		return model.ResultDraw
	}
}
