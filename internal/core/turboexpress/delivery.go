package turboexpress

import (
	"context"
	"fmt"
	"time"

	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/settlement"
)

type NewStop struct {
	Address        string
	RecipientName  string
	RecipientPhone string
}

type NewDelivery struct {
	Origin      string
	DistanceKm  float64
	DurationMin float64
	Stops       []NewStop
}

func (t *TurboExpress) CreateDelivery(ctx context.Context, clientID uint, in NewDelivery) (model.Delivery, error) {
	delivery := model.Delivery{}
	if in.Origin == "" {
		return delivery, ErrOriginNotValid
	}
	if len(in.Stops) == 0 {
		return delivery, ErrStopsNotValid
	}
	if in.DistanceKm < 0 {
		return delivery, ErrDistanceNotValid
	}

	stops := make([]model.DeliveryStop, 0, len(in.Stops))
	for i, stop := range in.Stops {
		if stop.Address == "" {
			return delivery, ErrStopsNotValid
		}
		stops = append(stops, model.DeliveryStop{
			Address:        stop.Address,
			RecipientName:  stop.RecipientName,
			RecipientPhone: stop.RecipientPhone,
			Status:         model.StopStatePending,
			Position:       i,
		})
	}

	delivery = model.Delivery{
		ClientID:    clientID,
		Origin:      in.Origin,
		Status:      model.DeliveryStateActive,
		DistanceKm:  in.DistanceKm,
		DurationMin: in.DurationMin,
		Stops:       stops,
	}
	if err := t.store.CreateDelivery(ctx, &delivery); err != nil {
		return delivery, fmt.Errorf("failed create delivery: %w", err)
	}

	return delivery, nil
}

// GetDelivery hides deliveries the user takes no part in behind not-found.
func (t *TurboExpress) GetDelivery(ctx context.Context, userID, deliveryID uint) (model.Delivery, error) {
	delivery, err := t.store.GetDelivery(ctx, deliveryID)
	if err != nil {
		return delivery, fmt.Errorf("failed get delivery: %w", err)
	}
	if delivery.ClientID != userID && delivery.CourierID != userID {
		return model.Delivery{}, errstore.ErrNotFoundData
	}

	return delivery, nil
}

func (t *TurboExpress) AvailableDeliveries(ctx context.Context) ([]*model.Delivery, error) {
	deliveries, err := t.store.AvailableDeliveries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting available deliveries: %w", err)
	}

	return deliveries, nil
}

func (t *TurboExpress) UserDeliveries(ctx context.Context, userID uint) ([]*model.Delivery, error) {
	deliveries, err := t.store.UserDeliveries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting deliveries by user: %w", err)
	}

	return deliveries, nil
}

func (t *TurboExpress) ClaimDelivery(ctx context.Context, courierID, deliveryID uint) error {
	err := t.store.ClaimDelivery(ctx, deliveryID, courierID, t.cfg.MaxActiveDeliveries)
	if err != nil {
		return fmt.Errorf("failed claim delivery: %w", err)
	}

	return nil
}

func (t *TurboExpress) StartStop(ctx context.Context, courierID, deliveryID uint, stopIndex int) error {
	err := t.store.StartStop(ctx, deliveryID, courierID, stopIndex)
	if err != nil {
		return fmt.Errorf("failed start stop: %w", err)
	}

	return nil
}

// FinalizeStop is the single settlement path: every caller that completes a
// stop goes through here.
func (t *TurboExpress) FinalizeStop(ctx context.Context, courierID, deliveryID uint, stopIndex int) (model.Settlement, error) {
	week := settlement.WeekID(time.Now())
	result, err := t.store.FinalizeStop(ctx, deliveryID, courierID, stopIndex, week)
	if err != nil {
		return result, fmt.Errorf("failed finalize stop: %w", err)
	}

	return result, nil
}
