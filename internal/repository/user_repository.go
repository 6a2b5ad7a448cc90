package repository

import (
	"context"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	// CreateWithSignupBonus inserts the user and credits the initial grant in
	// one transaction, so even the starting balance has a ledger trail.
	CreateWithSignupBonus(ctx context.Context, u *model.User, initialPoints int64) error
	// ApplyDailyBonus credits the login bonus at most once per calendar day.
	// Returns true when the bonus was granted.
	ApplyDailyBonus(ctx context.Context, uid string, now time.Time, amount int64) (bool, error)
	ListTopByPoints(ctx context.Context, limit int) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateWithSignupBonus(ctx context.Context, u *model.User, initialPoints int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u.Points = 0
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if err := applyPointDelta(tx, u.UID, initialPoints, model.PointTypeSignupBonus, "welcome bonus", nil); err != nil {
			return err
		}
		u.Points = initialPoints
		return nil
	})
}

func (r *userRepository) ApplyDailyBonus(ctx context.Context, uid string, now time.Time, amount int64) (bool, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	granted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The conditional update is the claim: a concurrent request for the
		// same user loses the race and grants nothing.
		res := tx.Model(&model.User{}).
			Where("uid = ? AND (last_login_at IS NULL OR last_login_at < ?)", uid, startOfDay).
			Update("last_login_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		granted = true
		return applyPointDelta(tx, uid, amount, model.PointTypeDailyLogin, "daily login bonus", nil)
	})
	return granted, err
}

func (r *userRepository) ListTopByPoints(ctx context.Context, limit int) ([]model.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Order("points DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
