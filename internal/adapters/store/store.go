package store

import (
	"context"
	"fmt"

	"github.com/turboexpress/backend/internal/adapters/store/database"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, user *model.User) error
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, id uint) (model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetAdminByLogin(ctx context.Context, login string) (model.Admin, error)
	CreateDelivery(ctx context.Context, delivery *model.Delivery) error
	GetDelivery(ctx context.Context, id uint) (model.Delivery, error)
	AvailableDeliveries(ctx context.Context) ([]*model.Delivery, error)
	UserDeliveries(ctx context.Context, userID uint) ([]*model.Delivery, error)
	ClaimDelivery(ctx context.Context, deliveryID, courierID uint, maxActive int) error
	StartStop(ctx context.Context, deliveryID, courierID uint, stopIndex int) error
	FinalizeStop(ctx context.Context, deliveryID, courierID uint, stopIndex int, week string) (model.Settlement, error)
	CreateLink(ctx context.Context, link *model.Link) error
	UserLinks(ctx context.Context, userID uint) ([]*model.Link, error)
	SetLinkStatus(ctx context.Context, linkID, userID uint, status model.LinkStatus) error
	CreateWithdrawal(ctx context.Context, courierID uint, amount float64, pixKey string) (model.Withdrawal, error)
	UserWithdrawals(ctx context.Context, courierID uint) ([]*model.Withdrawal, error)
	Withdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error)
	PayWithdrawal(ctx context.Context, id uint) error
	RankingEntries(ctx context.Context, week string) ([]*model.RankingEntry, error)
	RebuildRanking(ctx context.Context, week string) error
	Medals(ctx context.Context) ([]*model.Medal, error)
	CreateMedal(ctx context.Context, medal *model.Medal) error
	AwardMedal(ctx context.Context, userID uint, code string) error
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
