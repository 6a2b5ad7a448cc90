package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port                   string        `env:"PORT" envDefault:"8080"`
	DBUser                 string        `env:"DB_USER,required"`
	DBPassword             string        `env:"DB_PASSWORD,required"`
	DBHost                 string        `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string        `env:"DB_NAME,required"`
	DBPort                 string        `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string        `env:"INSTANCE_CONNECTION_NAME"`
	DBMaxOpenConns         int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns         int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime      time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	AdminUIDs              []string      `env:"ADMIN_UIDS" envSeparator:","`

	KBOAPIURL    string `env:"KBO_API_URL" envDefault:"https://www.koreabaseball.com/ws/Main.asmx/GetKboGameList"`
	SyncSchedule string `env:"SYNC_SCHEDULE" envDefault:"*/10 * * * *"`

	Game GameConfig
}

// GameConfig holds the point economy tunables. Defaults match the values the
// game launched with; override per environment.
type GameConfig struct {
	InitialUserPoints       int64   `env:"INITIAL_USER_POINTS" envDefault:"1000"`
	DailyLoginPoints        int64   `env:"DAILY_LOGIN_POINTS" envDefault:"10"`
	PredictionWinPoints     int64   `env:"PREDICTION_WIN_POINTS" envDefault:"50"`
	PerfectPredictionPoints int64   `env:"PERFECT_PREDICTION_POINTS" envDefault:"100"`
	MinimumBetAmount        int64   `env:"MINIMUM_BET_AMOUNT" envDefault:"10"`
	MaximumBetAmount        int64   `env:"MAXIMUM_BET_AMOUNT" envDefault:"1000"`
	HouseEdge               float64 `env:"HOUSE_EDGE" envDefault:"0.05"`
	MinOdds                 float64 `env:"MIN_ODDS" envDefault:"1.1"`
	MaxOdds                 float64 `env:"MAX_ODDS" envDefault:"10.0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
