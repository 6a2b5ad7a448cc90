package repository

import (
	"context"
	"fmt"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	ListActiveItems(ctx context.Context) ([]model.ShopItem, error)
	FindItemByID(ctx context.Context, id uint64) (*model.ShopItem, error)
	// Purchase debits the price and appends the inventory row atomically.
	Purchase(ctx context.Context, uid string, item *model.ShopItem) (*model.UserInventory, error)
	ListInventory(ctx context.Context, uid string) ([]model.UserInventory, error)
	CreateItem(ctx context.Context, item *model.ShopItem) error
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) ListActiveItems(ctx context.Context) ([]model.ShopItem, error) {
	var items []model.ShopItem
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("price ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shopRepository) FindItemByID(ctx context.Context, id uint64) (*model.ShopItem, error) {
	var item model.ShopItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shopRepository) Purchase(ctx context.Context, uid string, item *model.ShopItem) (*model.UserInventory, error) {
	inv := &model.UserInventory{
		ID:      uuid.NewString(),
		UserUID: uid,
		ItemID:  item.ID,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		desc := fmt.Sprintf("purchased %s", item.Name)
		relatedID := inv.ID
		if err := applyPointDelta(tx, uid, -item.Price, model.PointTypePurchase, desc, &relatedID); err != nil {
			return err
		}
		return tx.Create(inv).Error
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *shopRepository) ListInventory(ctx context.Context, uid string) ([]model.UserInventory, error) {
	var list []model.UserInventory
	if err := r.db.WithContext(ctx).
		Where("user_uid = ?", uid).
		Order("acquired_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *shopRepository) CreateItem(ctx context.Context, item *model.ShopItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
