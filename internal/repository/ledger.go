package repository

import (
	"errors"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientPoints is returned when a debit would take a balance below
// zero. The transaction is rolled back; no partial debit ever lands.
var ErrInsufficientPoints = errors.New("insufficient points")

// applyPointDelta is the single mutation path for user balances. It must run
// inside a transaction: it applies the signed delta to users.points (guarding
// debits against the current balance) and appends exactly one ledger row, so
// the sum of a user's point_histories always equals the user's balance.
func applyPointDelta(tx *gorm.DB, uid string, delta int64, ptype model.PointType, description string, relatedID *string) error {
	if delta == 0 {
		return nil
	}

	q := tx.Model(&model.User{}).Where("uid = ?", uid)
	if delta < 0 {
		q = q.Where("points >= ?", -delta)
	}
	res := q.Update("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.User{}).Where("uid = ?", uid).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientPoints
	}

	entry := &model.PointHistory{
		ID:          uuid.NewString(),
		UserUID:     uid,
		Amount:      delta,
		Type:        ptype,
		Description: description,
		RelatedID:   relatedID,
	}
	return tx.Create(entry).Error
}
