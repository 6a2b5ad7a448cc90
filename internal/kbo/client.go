// Package kbo fetches the day schedule from the KBO website service and
// normalizes it into the shapes the rest of the backend understands.
package kbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://www.koreabaseball.com/ws/Main.asmx/GetKboGameList"

type Client struct {
	endpoint string
	hc       *http.Client
	loc      *time.Location
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 15 * time.Second},
		loc:      loc,
	}
}

// rawGame is the subset of the provider payload the backend consumes.
type rawGame struct {
	GameID       string      `json:"G_ID"`
	Date         string      `json:"G_DT"` // yyyymmdd
	Time         string      `json:"G_TM"` // HH:MM
	Stadium      string      `json:"S_NM"`
	AwayTeamID   string      `json:"AWAY_ID"`
	AwayTeamName string      `json:"AWAY_NM"`
	HomeTeamID   string      `json:"HOME_ID"`
	HomeTeamName string      `json:"HOME_NM"`
	StateCode    string      `json:"GAME_STATE_SC"`
	CancelCode   string      `json:"CANCEL_SC_ID"`
	ResultFlag   json.Number `json:"GAME_RESULT_CK"`
	AwayScore    string      `json:"T_SCORE_CN"`
	HomeScore    string      `json:"B_SCORE_CN"`
}

type gameListResponse struct {
	Game []rawGame `json:"game"`
}

// FetchDay returns the normalized schedule for one day (yyyymmdd). A day with
// no games yields an empty slice, not an error.
func (c *Client) FetchDay(ctx context.Context, date string) ([]ScheduledGame, error) {
	body, err := json.Marshal(map[string]string{
		"leId": "1",
		"srId": "0,1,3,4,5,7,9",
		"date": date,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Referer", "https://www.koreabaseball.com/Schedule/GameCenter/Main.aspx")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; BallGeniusBot/1.0)")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kbo: schedule request failed with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed gameListResponse
	if err := json.Unmarshal(extractJSON(raw), &parsed); err != nil {
		return nil, fmt.Errorf("kbo: parse schedule response: %w", err)
	}

	games := make([]ScheduledGame, 0, len(parsed.Game))
	for _, rg := range parsed.Game {
		g, err := c.normalize(rg, date)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// extractJSON trims the HTML the service sometimes appends after the JSON body
// and isolates the {"game": ...} object.
func extractJSON(raw []byte) []byte {
	s := string(raw)
	if idx := strings.Index(s, "<!DOCTYPE html>"); idx != -1 {
		s = s[:idx]
	}
	start := strings.Index(s, `{"game":`)
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end >= start {
		s = s[start : end+1]
	}
	return []byte(s)
}
