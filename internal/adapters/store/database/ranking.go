package database

import (
	"context"
	"fmt"

	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) RankingEntries(ctx context.Context, week string) ([]*model.RankingEntry, error) {
	entries := []*model.RankingEntry{}
	err := s.db.WithContext(ctx).
		Where(&model.RankingEntry{Week: week}).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed get ranking entries: %w", err)
	}
	if len(entries) == 0 {
		return entries, errstore.ErrNotFoundData
	}

	return entries, nil
}

// RebuildRanking replaces the week's entries from the couriers' current
// scores. Couriers without points stay off the board.
func (s *Store) RebuildRanking(ctx context.Context, week string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		couriers := []*model.User{}
		err := tx.Where(&model.User{Type: model.UserTypeCourier}).
			Where("week_points > 0").
			Find(&couriers).Error
		if err != nil {
			return fmt.Errorf("failed get couriers: %w", err)
		}

		err = tx.Where(&model.RankingEntry{Week: week}).Delete(&model.RankingEntry{}).Error
		if err != nil {
			return fmt.Errorf("failed clear ranking: %w", err)
		}

		for _, courier := range couriers {
			if err := upsertRankingEntry(tx, week, courier); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

func upsertRankingEntry(tx *gorm.DB, week string, courier *model.User) error {
	var medals int64
	err := tx.Model(&model.UserMedal{}).Where("user_id = ?", courier.ID).Count(&medals).Error
	if err != nil {
		return fmt.Errorf("failed count medals: %w", err)
	}

	entry := model.RankingEntry{
		Week:      week,
		CourierID: courier.ID,
		Name:      courier.Name,
		Points:    courier.WeekPoints,
		Medals:    int(medals),
	}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week"}, {Name: "courier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "points", "medals", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed upsert ranking entry: %w", err)
	}

	return nil
}
