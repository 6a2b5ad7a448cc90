package service

import (
	"context"
	"errors"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"gorm.io/gorm"
)

type ShopService interface {
	ListItems(ctx context.Context) ([]model.ShopItem, error)
	// Purchase spends points on an item; the debit and the inventory row land
	// together or not at all.
	Purchase(ctx context.Context, uid string, itemID uint64) (*model.UserInventory, error)
	Inventory(ctx context.Context, uid string) ([]model.UserInventory, error)
}

type shopService struct {
	repo repository.ShopRepository
}

func NewShopService(repo repository.ShopRepository) ShopService {
	return &shopService{repo: repo}
}

func (s *shopService) ListItems(ctx context.Context) ([]model.ShopItem, error) {
	return s.repo.ListActiveItems(ctx)
}

func (s *shopService) Purchase(ctx context.Context, uid string, itemID uint64) (*model.UserInventory, error) {
	if uid == "" {
		return nil, ErrForbidden
	}
	item, err := s.repo.FindItemByID(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, ErrNotFound
	}
	return s.repo.Purchase(ctx, uid, item)
}

func (s *shopService) Inventory(ctx context.Context, uid string) ([]model.UserInventory, error) {
	if uid == "" {
		return nil, ErrForbidden
	}
	return s.repo.ListInventory(ctx, uid)
}
