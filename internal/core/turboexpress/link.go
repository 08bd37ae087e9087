package turboexpress

import (
	"context"
	"fmt"

	"github.com/turboexpress/backend/internal/adapters/store/model"
)

func (t *TurboExpress) CreateLink(ctx context.Context, clientID, courierID uint) (model.Link, error) {
	link := model.Link{
		ClientID:  clientID,
		CourierID: courierID,
		Status:    model.LinkStateActive,
	}
	if err := t.store.CreateLink(ctx, &link); err != nil {
		return link, fmt.Errorf("failed create link: %w", err)
	}

	return link, nil
}

func (t *TurboExpress) UserLinks(ctx context.Context, userID uint) ([]*model.Link, error) {
	links, err := t.store.UserLinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed get links: %w", err)
	}

	return links, nil
}

func (t *TurboExpress) SetLinkStatus(ctx context.Context, userID, linkID uint, status model.LinkStatus) error {
	if status != model.LinkStateActive && status != model.LinkStateInactive && status != model.LinkStateRemoved {
		return ErrLinkStatusNotValid
	}

	if err := t.store.SetLinkStatus(ctx, linkID, userID, status); err != nil {
		return fmt.Errorf("failed set link status: %w", err)
	}

	return nil
}
