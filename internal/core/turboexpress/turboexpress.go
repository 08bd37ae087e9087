package turboexpress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/settlement"
	"go.uber.org/zap"
)

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

type Config struct {
	MaxActiveDeliveries    int           `env:"MAX_ACTIVE_DELIVERIES" envDefault:"5"`
	RankingRebuildEnabled  bool          `env:"RANKING_REBUILD_ENABLED" envDefault:"true"`
	RankingRebuildInterval time.Duration `env:"RANKING_REBUILD_INTERVAL" envDefault:"10m"`
}

type TurboExpress struct {
	log   *zap.Logger
	cfg   *Config
	store Store
	wg    *sync.WaitGroup
}

type option func(*TurboExpress)

func Logger(log *zap.Logger) option {
	return func(t *TurboExpress) {
		t.log = log
	}
}

func New(ctx context.Context, cfg *Config, store Store, options ...option) *TurboExpress {
	t := &TurboExpress{
		log:   zap.NewNop(),
		store: store,
		cfg:   cfg,
		wg:    &sync.WaitGroup{},
	}

	for _, opt := range options {
		opt(t)
	}

	if t.cfg.RankingRebuildEnabled {
		t.wg.Add(1)
		go t.rankingMaintenance(ctx)
	}

	return t
}

func (t *TurboExpress) Register(ctx context.Context, login, password, name, phone string, userType model.UserType) error {
	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}

	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if userType != model.UserTypeClient && userType != model.UserTypeCourier {
		return fmt.Errorf("user type invalidate: %w", ErrUserTypeNotValid)
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	user := model.User{
		Login:        login,
		PasswordHash: hashPass,
		Name:         name,
		Phone:        phone,
		Type:         userType,
	}
	err = t.store.RegisterUser(ctx, &user)
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (t *TurboExpress) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}

	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	user, err = t.store.GetUserByLogin(ctx, login)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	return user, nil
}

func (t *TurboExpress) AdminAuthorization(ctx context.Context, login, password string) (model.Admin, error) {
	var admin model.Admin
	var err error
	if err := validateLogin(login); err != nil {
		return admin, fmt.Errorf("login invalidate: %w", err)
	}

	if err := validatePassword(password); err != nil {
		return admin, fmt.Errorf("password invalidate: %w", err)
	}

	admin, err = t.store.GetAdminByLogin(ctx, login)
	if err != nil {
		return admin, fmt.Errorf("failed getting admin `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, admin.PasswordHash); !ok {
		return admin, ErrPasswordNotEquale
	}

	return admin, nil
}

func (t *TurboExpress) GetUser(ctx context.Context, id uint) (model.User, error) {
	user, err := t.store.GetUserByID(ctx, id)
	if err != nil {
		return user, fmt.Errorf("failed getting user: %w", err)
	}

	return user, nil
}

func (t *TurboExpress) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := t.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting users: %w", err)
	}

	return users, nil
}

func (t *TurboExpress) rankingMaintenance(ctx context.Context) {
	t.log.Debug("start gorutin rankingMaintenance")
	defer t.log.Debug("stopped gorutin rankingMaintenance")
	defer t.wg.Done()
	tick := time.NewTicker(t.cfg.RankingRebuildInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			t.log.Debug("ranking maintenance stopping")
			return
		case <-tick.C:
			week := settlement.WeekID(time.Now())
			if err := t.store.RebuildRanking(ctx, week); err != nil {
				t.log.Error("failed rebuild ranking", zap.String("week", week), zap.Error(err))
				continue
			}
			t.log.Debug("ranking rebuilt", zap.String("week", week))
		}
	}
}

func (t *TurboExpress) Wait() {
	t.wg.Wait()
}
