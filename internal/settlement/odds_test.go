package settlement

import "testing"

var testOddsCfg = OddsConfig{HouseEdge: 0.05, MinOdds: 1.1, MaxOdds: 10.0}

func TestComputeOdds(t *testing.T) {
	tests := []struct {
		name     string
		homePool int64
		awayPool int64
		wantHome float64
		wantAway float64
	}{
		{"empty pools quote even money", 0, 0, DefaultOdds, DefaultOdds},
		{"balanced pools", 1000, 1000, 0.95 * 2000 / 1000, 0.95 * 2000 / 1000},
		{"one sided pool clamps to floor", 10000, 100, 1.1, 10.0},
		{"empty side quotes default", 500, 0, 1.1, DefaultOdds},
		{"mild imbalance", 600, 400, 0.95 * 1000 / 600, 0.95 * 1000 / 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := ComputeOdds(tt.homePool, tt.awayPool, testOddsCfg)
			if home != tt.wantHome || away != tt.wantAway {
				t.Fatalf("got (%v, %v), want (%v, %v)", home, away, tt.wantHome, tt.wantAway)
			}
		})
	}
}

func TestComputeOddsAlwaysWithinBounds(t *testing.T) {
	pools := []int64{0, 1, 10, 99, 1000, 50000, 1 << 40}
	for _, h := range pools {
		for _, a := range pools {
			home, away := ComputeOdds(h, a, testOddsCfg)
			for _, odds := range []float64{home, away} {
				if odds < testOddsCfg.MinOdds || odds > testOddsCfg.MaxOdds {
					t.Fatalf("ComputeOdds(%d, %d) = %v outside [%v, %v]", h, a, odds, testOddsCfg.MinOdds, testOddsCfg.MaxOdds)
				}
			}
		}
	}
}

func TestComputeOddsEmptyPoolIgnoresEdge(t *testing.T) {
	for _, edge := range []float64{0, 0.05, 0.3, 0.99} {
		cfg := testOddsCfg
		cfg.HouseEdge = edge
		home, away := ComputeOdds(0, 0, cfg)
		if home != DefaultOdds || away != DefaultOdds {
			t.Fatalf("edge=%v: got (%v, %v), want defaults", edge, home, away)
		}
	}
}
