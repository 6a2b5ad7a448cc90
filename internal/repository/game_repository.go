package repository

import (
	"context"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"gorm.io/gorm"
)

var terminalStatuses = []model.GameStatus{model.GameStatusCompleted, model.GameStatusCancelled}

type GameRepository interface {
	FindByID(ctx context.Context, id string) (*model.Game, error)
	ListByDate(ctx context.Context, date string) ([]model.Game, error)
	// Upsert creates the game or refreshes a non-terminal row. Terminal rows
	// are immutable; upserting over one is a no-op.
	Upsert(ctx context.Context, g *model.Game) error
	// RecordResult writes the final score and flips the game to COMPLETED in
	// one conditional update. Returns false when the game was already
	// terminal.
	RecordResult(ctx context.Context, id string, homeScore, awayScore int) (bool, error)
	// MarkCancelled transitions SCHEDULED/LIVE to CANCELLED. Returns false
	// when the game was already terminal.
	MarkCancelled(ctx context.Context, id string) (bool, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) FindByID(ctx context.Context, id string) (*model.Game, error) {
	var g model.Game
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) ListByDate(ctx context.Context, date string) ([]model.Game, error) {
	var games []model.Game
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC, id ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) Upsert(ctx context.Context, g *model.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Game
		err := tx.Where("id = ?", g.ID).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return tx.Create(g).Error
			}
			return err
		}
		if existing.Status.IsTerminal() {
			return nil
		}
		return tx.Model(&model.Game{}).
			Where("id = ? AND status NOT IN ?", g.ID, terminalStatuses).
			Updates(map[string]interface{}{
				"start_time":     g.StartTime,
				"stadium":        g.Stadium,
				"home_team_name": g.HomeTeamName,
				"away_team_name": g.AwayTeamName,
				"status":         g.Status,
				"home_score":     g.HomeScore,
				"away_score":     g.AwayScore,
			}).Error
	})
}

func (r *gameRepository) RecordResult(ctx context.Context, id string, homeScore, awayScore int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ? AND status NOT IN ?", id, terminalStatuses).
		Updates(map[string]interface{}{
			"status":     model.GameStatusCompleted,
			"home_score": homeScore,
			"away_score": awayScore,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gameRepository) MarkCancelled(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ? AND status NOT IN ?", id, terminalStatuses).
		Update("status", model.GameStatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
