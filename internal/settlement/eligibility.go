package settlement

import (
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
)

// PredictionCutoffLead is how long before first pitch the books close.
const PredictionCutoffLead = time.Hour

// PredictionCutoff returns the instant from which the game no longer accepts
// predictions or bets.
func PredictionCutoff(g *model.Game) time.Time {
	return g.StartTime.Add(-PredictionCutoffLead)
}

// IsPredictable reports whether the game is still open for new predictions and
// bets. Live and terminal games are closed; scheduled games close exactly at
// the cutoff (the boundary instant itself is closed).
func IsPredictable(g *model.Game, now time.Time) bool {
	switch g.Status {
	case model.GameStatusCompleted, model.GameStatusCancelled, model.GameStatusLive:
		return false
	}
	return now.Before(PredictionCutoff(g))
}
