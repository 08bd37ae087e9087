package turboexpress

import (
	"context"
	"fmt"

	"github.com/turboexpress/backend/internal/adapters/store/model"
)

func (t *TurboExpress) Medals(ctx context.Context) ([]*model.Medal, error) {
	medals, err := t.store.Medals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get medals: %w", err)
	}

	return medals, nil
}

func (t *TurboExpress) CreateMedal(ctx context.Context, code, name, description string) error {
	if code == "" || name == "" {
		return ErrMedalNotValid
	}

	medal := model.Medal{Code: code, Name: name, Description: description}
	if err := t.store.CreateMedal(ctx, &medal); err != nil {
		return fmt.Errorf("failed create medal: %w", err)
	}

	return nil
}

func (t *TurboExpress) AwardMedal(ctx context.Context, userID uint, code string) error {
	if err := t.store.AwardMedal(ctx, userID, code); err != nil {
		return fmt.Errorf("failed award medal: %w", err)
	}

	return nil
}
