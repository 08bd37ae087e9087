package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DSN string `env:"DATABASE_URI"`
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Delivery{},
		&model.DeliveryStop{},
		&model.Link{},
		&model.Withdrawal{},
		&model.RankingEntry{},
		&model.Medal{},
		&model.UserMedal{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}

func (s *Store) RegisterUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrLoginNotUnique
		}
		return fmt.Errorf("failed save user: %w", err)
	}

	return nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Login: login}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (model.User, error) {
	user := model.User{}
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed get user: %w", err)
	}

	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed get users: %w", err)
	}

	return users, nil
}

func (s *Store) GetAdminByLogin(ctx context.Context, login string) (model.Admin, error) {
	admin := model.Admin{}
	result := s.db.WithContext(ctx).Where(&model.Admin{Login: login}).First(&admin)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admin, errors.Join(errstore.ErrNotFoundData, err)
		}
		return admin, fmt.Errorf("error found admin: %w", err)
	}

	return admin, nil
}

func (s *Store) CreateLink(ctx context.Context, link *model.Link) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courier := model.User{}
		if err := tx.First(&courier, link.CourierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get courier: %w", err)
		}
		if courier.Type != model.UserTypeCourier {
			return errstore.ErrUserNotCourier
		}

		existing := model.Link{}
		err := tx.Where(&model.Link{ClientID: link.ClientID, CourierID: link.CourierID, Status: model.LinkStateActive}).
			First(&existing).Error
		if err == nil {
			return errstore.ErrLinkExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed select link: %w", err)
		}

		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("failed create link: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

func (s *Store) UserLinks(ctx context.Context, userID uint) ([]*model.Link, error) {
	links := []*model.Link{}
	err := s.db.WithContext(ctx).
		Where("client_id = ? OR courier_id = ?", userID, userID).
		Where("status <> ?", model.LinkStateRemoved).
		Order("id").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed get links: %w", err)
	}

	return links, nil
}

func (s *Store) SetLinkStatus(ctx context.Context, linkID, userID uint, status model.LinkStatus) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link := model.Link{}
		if err := tx.First(&link, linkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get link: %w", err)
		}
		if link.ClientID != userID && link.CourierID != userID {
			return errstore.ErrNotFoundData
		}

		link.Status = status
		if err := tx.Save(&link).Error; err != nil {
			return fmt.Errorf("failed save link: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

func (s *Store) Medals(ctx context.Context) ([]*model.Medal, error) {
	medals := []*model.Medal{}
	if err := s.db.WithContext(ctx).Order("code").Find(&medals).Error; err != nil {
		return nil, fmt.Errorf("failed get medals: %w", err)
	}

	return medals, nil
}

func (s *Store) CreateMedal(ctx context.Context, medal *model.Medal) error {
	if err := s.db.WithContext(ctx).Create(medal).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrMedalNotUnique
		}
		return fmt.Errorf("failed create medal: %w", err)
	}

	return nil
}

func (s *Store) AwardMedal(ctx context.Context, userID uint, code string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		medal := model.Medal{}
		if err := tx.Where(&model.Medal{Code: code}).First(&medal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get medal: %w", err)
		}

		user := model.User{}
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get user: %w", err)
		}

		award := model.UserMedal{UserID: userID, MedalCode: code}
		if err := tx.Create(&award).Error; err != nil {
			return fmt.Errorf("failed award medal: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}
