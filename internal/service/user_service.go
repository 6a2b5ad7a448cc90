package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	// EnsureUser returns the user row for the authenticated UID, creating it
	// with the signup grant on first sight and applying the once-a-day login
	// bonus. dailyBonus reports whether the bonus landed on this call.
	EnsureUser(ctx context.Context, uid string) (user *model.User, dailyBonus bool, err error)
	GetPublic(ctx context.Context, uid string) (*model.User, error)
	Leaderboard(ctx context.Context, limit int) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
	cfg  config.GameConfig
	now  func() time.Time
}

func NewUserService(repo repository.UserRepository, cfg config.GameConfig) UserService {
	return &userService{repo: repo, cfg: cfg, now: time.Now}
}

func (s *userService) EnsureUser(ctx context.Context, uid string) (*model.User, bool, error) {
	if uid == "" {
		return nil, false, ErrForbidden
	}

	u, err := s.repo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = &model.User{
			UID:      uid,
			Nickname: defaultNickname(uid),
		}
		if err := s.repo.CreateWithSignupBonus(ctx, u, s.cfg.InitialUserPoints); err != nil {
			return nil, false, err
		}
	} else if err != nil {
		return nil, false, err
	}

	granted, err := s.repo.ApplyDailyBonus(ctx, uid, s.now(), s.cfg.DailyLoginPoints)
	if err != nil {
		return nil, false, err
	}
	if granted {
		u, err = s.repo.FindByUID(ctx, uid)
		if err != nil {
			return nil, false, err
		}
	}
	return u, granted, nil
}

func (s *userService) GetPublic(ctx context.Context, uid string) (*model.User, error) {
	u, err := s.repo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *userService) Leaderboard(ctx context.Context, limit int) ([]model.User, error) {
	return s.repo.ListTopByPoints(ctx, limit)
}

func defaultNickname(uid string) string {
	if len(uid) > 8 {
		uid = uid[:8]
	}
	return fmt.Sprintf("player-%s", uid)
}
