package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/settlement"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateDelivery(ctx context.Context, delivery *model.Delivery) error {
	if err := s.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed create delivery: %w", err)
	}

	return nil
}

func (s *Store) GetDelivery(ctx context.Context, id uint) (model.Delivery, error) {
	delivery := model.Delivery{}
	err := s.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&delivery, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return delivery, errstore.ErrNotFoundData
		}
		return delivery, fmt.Errorf("failed get delivery: %w", err)
	}

	return delivery, nil
}

func (s *Store) AvailableDeliveries(ctx context.Context) ([]*model.Delivery, error) {
	deliveries := []*model.Delivery{}
	err := s.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where(&model.Delivery{Status: model.DeliveryStateActive}).
		Where("courier_id = 0").
		Order("id").
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed get available deliveries: %w", err)
	}

	return deliveries, nil
}

func (s *Store) UserDeliveries(ctx context.Context, userID uint) ([]*model.Delivery, error) {
	deliveries := []*model.Delivery{}
	err := s.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("client_id = ? OR courier_id = ?", userID, userID).
		Order("id").
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed get deliveries: %w", err)
	}

	return deliveries, nil
}

func (s *Store) ClaimDelivery(ctx context.Context, deliveryID, courierID uint, maxActive int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courier := model.User{}
		if err := tx.First(&courier, courierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get courier: %w", err)
		}
		if courier.Type != model.UserTypeCourier {
			return errstore.ErrUserNotCourier
		}

		delivery := model.Delivery{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&delivery, deliveryID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get delivery: %w", err)
		}
		if delivery.Status != model.DeliveryStateActive || delivery.CourierID != 0 {
			return errstore.ErrDeliveryNotAvailable
		}

		var active int64
		err = tx.Model(&model.Delivery{}).
			Where("courier_id = ? AND status = ?", courierID, model.DeliveryStateInProgress).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed count active deliveries: %w", err)
		}
		if active >= int64(maxActive) {
			return errstore.ErrTooManyDeliveries
		}

		delivery.CourierID = courierID
		delivery.Status = model.DeliveryStateInProgress
		if err := tx.Save(&delivery).Error; err != nil {
			return fmt.Errorf("failed save delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

func (s *Store) StartStop(ctx context.Context, deliveryID, courierID uint, stopIndex int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		delivery, stops, err := lockDelivery(tx, deliveryID, courierID)
		if err != nil {
			return err
		}
		if delivery.Status == model.DeliveryStateFinished {
			return errstore.ErrDeliveryFinished
		}
		if stopIndex < 0 || stopIndex >= len(stops) {
			return errstore.ErrStopIndexOutOfRange
		}

		stop := &stops[stopIndex]
		if stop.Status == model.StopStateDone {
			return errstore.ErrStopFinished
		}
		stop.Status = model.StopStateInProgress
		if err := tx.Save(stop).Error; err != nil {
			return fmt.Errorf("failed save stop: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

// FinalizeStop marks one stop done and, when it was the last one, settles the
// whole delivery: prices, courier credits and the week's ranking entry commit
// in a single transaction, so a retry after completion can never credit the
// courier twice.
func (s *Store) FinalizeStop(ctx context.Context, deliveryID, courierID uint, stopIndex int, week string) (model.Settlement, error) {
	res := model.Settlement{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		delivery, stops, err := lockDelivery(tx, deliveryID, courierID)
		if err != nil {
			return err
		}
		if delivery.Status == model.DeliveryStateFinished {
			return errstore.ErrDeliveryFinished
		}
		if stopIndex < 0 || stopIndex >= len(stops) {
			return errstore.ErrStopIndexOutOfRange
		}

		stop := &stops[stopIndex]
		if stop.Status != model.StopStateDone {
			stop.Status = model.StopStateDone
			if err := tx.Save(stop).Error; err != nil {
				return fmt.Errorf("failed save stop: %w", err)
			}
		}

		for i := range stops {
			if stops[i].Status != model.StopStateDone {
				return nil
			}
		}

		quote := settlement.Price(delivery.DistanceKm, len(stops))
		now := time.Now()
		delivery.Status = model.DeliveryStateFinished
		delivery.CompletedAt = &now
		delivery.ClientPrice = quote.ClientPrice
		delivery.CourierPayout = quote.CourierPayout
		delivery.PlatformMargin = quote.PlatformMargin
		if err := tx.Omit("Stops").Save(&delivery).Error; err != nil {
			return fmt.Errorf("failed save delivery: %w", err)
		}

		courier := model.User{}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&courier, courierID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get courier: %w", err)
		}
		courier.Balance += quote.CourierPayout
		courier.Deliveries++
		courier.WeekPoints += settlement.PointsPerDelivery
		courier.XP, courier.Level = settlement.ApplyXP(courier.XP, courier.Level, settlement.XPPerDelivery)
		if err := tx.Save(&courier).Error; err != nil {
			return fmt.Errorf("failed save courier: %w", err)
		}

		if err := upsertRankingEntry(tx, week, &courier); err != nil {
			return err
		}

		res = model.Settlement{
			Finished:       true,
			ClientPrice:    quote.ClientPrice,
			CourierPayout:  quote.CourierPayout,
			PlatformMargin: quote.PlatformMargin,
			WeekPoints:     courier.WeekPoints,
			XP:             courier.XP,
			Level:          courier.Level,
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed complite transaction: %w", err)
	}

	return res, nil
}

func lockDelivery(tx *gorm.DB, deliveryID, courierID uint) (model.Delivery, []model.DeliveryStop, error) {
	delivery := model.Delivery{}
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&delivery, deliveryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return delivery, nil, errstore.ErrNotFoundData
		}
		return delivery, nil, fmt.Errorf("failed get delivery: %w", err)
	}
	// The assigned courier is taken from the stored record, never from the
	// caller.
	if delivery.CourierID != courierID {
		return delivery, nil, errstore.ErrCourierMismatch
	}

	stops := []model.DeliveryStop{}
	err = tx.Where(&model.DeliveryStop{DeliveryID: delivery.ID}).Order("position").Find(&stops).Error
	if err != nil {
		return delivery, nil, fmt.Errorf("failed get stops: %w", err)
	}

	return delivery, stops, nil
}
