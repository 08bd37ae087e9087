package turboexpress

import (
	"context"
	"fmt"

	"github.com/turboexpress/backend/internal/adapters/store/model"
)

func (t *TurboExpress) RequestWithdrawal(ctx context.Context, courierID uint, amount float64, pixKey string) (model.Withdrawal, error) {
	withdrawal := model.Withdrawal{}
	if amount <= 0 {
		return withdrawal, ErrAmountNotValid
	}
	if pixKey == "" {
		return withdrawal, ErrPixKeyNotValid
	}

	withdrawal, err := t.store.CreateWithdrawal(ctx, courierID, amount, pixKey)
	if err != nil {
		return withdrawal, fmt.Errorf("failed create withdrawal: %w", err)
	}

	return withdrawal, nil
}

func (t *TurboExpress) UserWithdrawals(ctx context.Context, courierID uint) ([]*model.Withdrawal, error) {
	withdrawals, err := t.store.UserWithdrawals(ctx, courierID)
	if err != nil {
		return withdrawals, fmt.Errorf("failed get withdrawals: %w", err)
	}

	return withdrawals, nil
}

func (t *TurboExpress) Withdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error) {
	withdrawals, err := t.store.Withdrawals(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed get withdrawals: %w", err)
	}

	return withdrawals, nil
}

func (t *TurboExpress) PayWithdrawal(ctx context.Context, id uint) error {
	if err := t.store.PayWithdrawal(ctx, id); err != nil {
		return fmt.Errorf("failed pay withdrawal: %w", err)
	}

	return nil
}
