package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/db"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedMatchup struct {
	Stadium  string
	HomeID   string
	HomeName string
	AwayID   string
	AwayName string
	Hour     int
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Game{}, &model.ShopItem{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("games already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	games := buildSeedGames(time.Now())
	items := buildSeedItems()

	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&games).Error; err != nil {
			return fmt.Errorf("seed games: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
			return fmt.Errorf("seed shop items: %w", err)
		}
		log.Printf("seeded %d games, %d shop items", len(games), len(items))
		return nil
	})
}

func buildSeedGames(now time.Time) []model.Game {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	now = now.In(loc)
	date := now.Format("20060102")

	matchups := []seedMatchup{
		{Stadium: "잠실", HomeID: "LG", HomeName: "LG 트윈스", AwayID: "OB", AwayName: "두산 베어스", Hour: 18},
		{Stadium: "고척", HomeID: "WO", HomeName: "키움 히어로즈", AwayID: "SS", AwayName: "삼성 라이온즈", Hour: 18},
		{Stadium: "문학", HomeID: "SK", HomeName: "SSG 랜더스", AwayID: "HT", AwayName: "KIA 타이거즈", Hour: 18},
		{Stadium: "수원", HomeID: "KT", HomeName: "KT 위즈", AwayID: "LT", AwayName: "롯데 자이언츠", Hour: 17},
		{Stadium: "대전", HomeID: "HH", HomeName: "한화 이글스", AwayID: "NC", AwayName: "NC 다이노스", Hour: 17},
	}

	games := make([]model.Game, 0, len(matchups))
	for _, m := range matchups {
		start := time.Date(now.Year(), now.Month(), now.Day(), m.Hour, 30, 0, 0, loc)
		games = append(games, model.Game{
			ID:           date + m.AwayID + m.HomeID + "0",
			Date:         date,
			StartTime:    start,
			Stadium:      m.Stadium,
			HomeTeamID:   m.HomeID,
			HomeTeamName: m.HomeName,
			AwayTeamID:   m.AwayID,
			AwayTeamName: m.AwayName,
			Status:       model.GameStatusScheduled,
		})
	}
	return games
}

func buildSeedItems() []model.ShopItem {
	return []model.ShopItem{
		{Name: "응원 배지 (브론즈)", Description: "프로필에 표시되는 브론즈 응원 배지.", Price: 200, Category: "badge"},
		{Name: "응원 배지 (실버)", Description: "프로필에 표시되는 실버 응원 배지.", Price: 500, Category: "badge"},
		{Name: "응원 배지 (골드)", Description: "프로필에 표시되는 골드 응원 배지.", Price: 1500, Category: "badge"},
		{Name: "닉네임 컬러", Description: "리더보드에서 닉네임을 강조 색상으로 표시.", Price: 800, Category: "cosmetic"},
		{Name: "프로필 테두리", Description: "프로필 사진에 팀 컬러 테두리를 적용.", Price: 1000, Category: "cosmetic"},
		{Name: "승리 이펙트", Description: "예측 적중 시 특별 애니메이션 효과.", Price: 2500, Category: "cosmetic"},
	}
}

func shouldSeed(gdb *gorm.DB) (bool, error) {
	var cnt int64
	if err := gdb.Model(&model.Game{}).Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("count games: %w", err)
	}
	if cnt == 0 {
		return true, nil
	}
	return strings.EqualFold(os.Getenv("FORCE_SEED"), "true"), nil
}
