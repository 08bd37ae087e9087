package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateWithdrawal debits the courier's available balance in the same
// transaction that records the request, so the balance can not be spent
// twice.
func (s *Store) CreateWithdrawal(ctx context.Context, courierID uint, amount float64, pixKey string) (model.Withdrawal, error) {
	withdrawal := model.Withdrawal{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courier := model.User{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&courier, courierID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get courier: %w", err)
		}
		if courier.Type != model.UserTypeCourier {
			return errstore.ErrUserNotCourier
		}

		if courier.Balance < amount {
			return fmt.Errorf("%w: %f", errstore.ErrBalansNotEnough, amount)
		}

		courier.Balance -= amount
		if err := tx.Save(&courier).Error; err != nil {
			return fmt.Errorf("failed save courier: %w", err)
		}

		withdrawal = model.Withdrawal{
			CourierID: courierID,
			Amount:    amount,
			PixKey:    pixKey,
			Status:    model.WithdrawalStatePending,
		}
		if err := tx.Create(&withdrawal).Error; err != nil {
			return fmt.Errorf("failed create withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return withdrawal, fmt.Errorf("failed complite transaction: %w", err)
	}

	return withdrawal, nil
}

func (s *Store) UserWithdrawals(ctx context.Context, courierID uint) ([]*model.Withdrawal, error) {
	withdrawals := []*model.Withdrawal{}
	err := s.db.WithContext(ctx).
		Where(&model.Withdrawal{CourierID: courierID}).
		Order("id").
		Find(&withdrawals).Error
	if err != nil {
		return nil, fmt.Errorf("failed get withdrawals: %w", err)
	}
	if len(withdrawals) == 0 {
		return withdrawals, errstore.ErrNotFoundData
	}

	return withdrawals, nil
}

func (s *Store) Withdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error) {
	withdrawals := []*model.Withdrawal{}
	tx := s.db.WithContext(ctx)
	if status != "" {
		tx = tx.Where(&model.Withdrawal{Status: status})
	}
	if err := tx.Order("id").Find(&withdrawals).Error; err != nil {
		return nil, fmt.Errorf("failed get withdrawals: %w", err)
	}

	return withdrawals, nil
}

func (s *Store) PayWithdrawal(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		withdrawal := model.Withdrawal{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get withdrawal: %w", err)
		}
		if withdrawal.Status == model.WithdrawalStatePaid {
			return errstore.ErrWithdrawalPaid
		}

		now := time.Now()
		withdrawal.Status = model.WithdrawalStatePaid
		withdrawal.PaidAt = &now
		if err := tx.Save(&withdrawal).Error; err != nil {
			return fmt.Errorf("failed save withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}
