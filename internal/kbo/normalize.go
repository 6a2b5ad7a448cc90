package kbo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
)

// Provider game-state codes.
const (
	stateNotStarted = "0"
	stateDelayed    = "1"
	stateInProgress = "2"
	stateFinished   = "3"
	stateCancelled  = "4"
	statePostponed  = "6"
)

// ScheduledGame is one provider record normalized to local types.
type ScheduledGame struct {
	ID           string
	Date         string
	StartTime    time.Time
	Stadium      string
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	Status       model.GameStatus
	HomeScore    *int
	AwayScore    *int
}

func (c *Client) normalize(rg rawGame, date string) (ScheduledGame, error) {
	id := rg.GameID
	if id == "" {
		id = fmt.Sprintf("%s%s%s0", date, rg.AwayTeamID, rg.HomeTeamID)
	}
	gameDate := rg.Date
	if gameDate == "" {
		gameDate = date
	}

	start, err := c.parseStart(gameDate, rg.Time)
	if err != nil {
		return ScheduledGame{}, fmt.Errorf("kbo: game %s: %w", id, err)
	}

	g := ScheduledGame{
		ID:           id,
		Date:         gameDate,
		StartTime:    start,
		Stadium:      rg.Stadium,
		HomeTeamID:   rg.HomeTeamID,
		HomeTeamName: rg.HomeTeamName,
		AwayTeamID:   rg.AwayTeamID,
		AwayTeamName: rg.AwayTeamName,
		Status:       mapStatus(rg),
	}

	if g.Status == model.GameStatusCompleted {
		if hs, err := strconv.Atoi(rg.HomeScore); err == nil {
			g.HomeScore = &hs
		}
		if as, err := strconv.Atoi(rg.AwayScore); err == nil {
			g.AwayScore = &as
		}
	}
	return g, nil
}

func (c *Client) parseStart(date, hhmm string) (time.Time, error) {
	if len(date) != 8 {
		return time.Time{}, fmt.Errorf("bad date %q", date)
	}
	if hhmm == "" {
		hhmm = "18:30"
	}
	return time.ParseInLocation("20060102 15:04", date+" "+hhmm, c.loc)
}

// mapStatus folds the provider's flags into the game lifecycle. The explicit
// result flag wins over the state code; a cancel code always means CANCELLED.
func mapStatus(rg rawGame) model.GameStatus {
	if v, err := rg.ResultFlag.Int64(); err == nil && v == 1 {
		return model.GameStatusCompleted
	}
	if rg.CancelCode != "" && rg.CancelCode != "0" {
		return model.GameStatusCancelled
	}
	switch rg.StateCode {
	case stateInProgress, stateFinished:
		return model.GameStatusLive
	case stateCancelled, statePostponed:
		return model.GameStatusCancelled
	case stateNotStarted, stateDelayed:
		return model.GameStatusScheduled
	default:
		return model.GameStatusScheduled
	}
}
