package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
)

// These tests run against a real database because the settlement guarantees
// live inside the transaction, not in the callers.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	s, err := New(context.Background(), &Config{DSN: dsn})
	require.NoError(t, err)

	err = s.db.Exec(
		`TRUNCATE users, admins, deliveries, delivery_stops, links, withdrawals, ranking_entries, medals, user_medals RESTART IDENTITY CASCADE`,
	).Error
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := s.CloseDB(); err != nil {
			t.Logf("failed close database: %v", err)
		}
	})

	return s
}

func createUser(t *testing.T, s *Store, login string, userType model.UserType) model.User {
	t.Helper()

	user := model.User{Login: login, PasswordHash: "hash", Name: login, Type: userType}
	require.NoError(t, s.RegisterUser(context.Background(), &user))
	return user
}

func createClaimedDelivery(t *testing.T, s *Store, clientID, courierID uint, stops int) model.Delivery {
	t.Helper()
	ctx := context.Background()

	delivery := model.Delivery{
		ClientID:   clientID,
		Origin:     "Av. Paulista, 1000",
		Status:     model.DeliveryStateActive,
		DistanceKm: 10,
	}
	for i := 0; i < stops; i++ {
		delivery.Stops = append(delivery.Stops, model.DeliveryStop{
			Address:  "Rua A, 1",
			Status:   model.StopStatePending,
			Position: i,
		})
	}
	require.NoError(t, s.CreateDelivery(ctx, &delivery))
	require.NoError(t, s.ClaimDelivery(ctx, delivery.ID, courierID, 5))
	return delivery
}

func TestStore_FinalizeStop_settlesOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	client := createUser(t, s, "maria", model.UserTypeClient)
	courier := createUser(t, s, "joao", model.UserTypeCourier)
	delivery := createClaimedDelivery(t, s, client.ID, courier.ID, 2)

	res, err := s.FinalizeStop(ctx, delivery.ID, courier.ID, 0, "2026-W35")
	assert.NoError(t, err)
	assert.False(t, res.Finished)

	res, err = s.FinalizeStop(ctx, delivery.ID, courier.ID, 1, "2026-W35")
	assert.NoError(t, err)
	assert.True(t, res.Finished)
	assert.InDelta(t, 20, res.ClientPrice, 1e-9)
	assert.InDelta(t, 18, res.CourierPayout, 1e-9)
	assert.InDelta(t, 2, res.PlatformMargin, 1e-9)
	assert.Equal(t, 10, res.WeekPoints)
	assert.Equal(t, 10, res.XP)
	assert.Equal(t, 0, res.Level)

	got, err := s.GetDelivery(ctx, delivery.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStateFinished, got.Status)
	assert.NotNil(t, got.CompletedAt)

	paid, err := s.GetUserByID(ctx, courier.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 18, paid.Balance, 1e-9)
	assert.Equal(t, 1, paid.Deliveries)

	// A retry after completion must not credit the courier twice.
	_, err = s.FinalizeStop(ctx, delivery.ID, courier.ID, 1, "2026-W35")
	assert.ErrorIs(t, err, errstore.ErrDeliveryFinished)

	paid, err = s.GetUserByID(ctx, courier.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 18, paid.Balance, 1e-9)
	assert.Equal(t, 1, paid.Deliveries)
	assert.Equal(t, 10, paid.WeekPoints)

	entries, err := s.RankingEntries(ctx, "2026-W35")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, courier.ID, entries[0].CourierID)
	assert.Equal(t, 10, entries[0].Points)
}

func TestStore_FinalizeStop_outOfRangeMutatesNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	client := createUser(t, s, "maria", model.UserTypeClient)
	courier := createUser(t, s, "joao", model.UserTypeCourier)
	delivery := createClaimedDelivery(t, s, client.ID, courier.ID, 2)

	_, err := s.FinalizeStop(ctx, delivery.ID, courier.ID, 5, "2026-W35")
	assert.ErrorIs(t, err, errstore.ErrStopIndexOutOfRange)

	_, err = s.FinalizeStop(ctx, delivery.ID, courier.ID, -1, "2026-W35")
	assert.ErrorIs(t, err, errstore.ErrStopIndexOutOfRange)

	got, err := s.GetDelivery(ctx, delivery.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStateInProgress, got.Status)
	for _, stop := range got.Stops {
		assert.Equal(t, model.StopStatePending, stop.Status)
	}

	courierAfter, err := s.GetUserByID(ctx, courier.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 0, courierAfter.Balance, 1e-9)
	assert.Equal(t, 0, courierAfter.Deliveries)

	_, err = s.RankingEntries(ctx, "2026-W35")
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestStore_FinalizeStop_courierMismatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	client := createUser(t, s, "maria", model.UserTypeClient)
	courier := createUser(t, s, "joao", model.UserTypeCourier)
	other := createUser(t, s, "pedro", model.UserTypeCourier)
	delivery := createClaimedDelivery(t, s, client.ID, courier.ID, 1)

	_, err := s.FinalizeStop(ctx, delivery.ID, other.ID, 0, "2026-W35")
	assert.ErrorIs(t, err, errstore.ErrCourierMismatch)

	otherAfter, err := s.GetUserByID(ctx, other.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 0, otherAfter.Balance, 1e-9)
}

func TestStore_FinalizeStop_rankingUpsertSameWeek(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	client := createUser(t, s, "maria", model.UserTypeClient)
	courier := createUser(t, s, "joao", model.UserTypeCourier)

	first := createClaimedDelivery(t, s, client.ID, courier.ID, 1)
	res, err := s.FinalizeStop(ctx, first.ID, courier.ID, 0, "2026-W35")
	assert.NoError(t, err)
	assert.True(t, res.Finished)

	second := createClaimedDelivery(t, s, client.ID, courier.ID, 1)
	res, err = s.FinalizeStop(ctx, second.ID, courier.ID, 0, "2026-W35")
	assert.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, 20, res.WeekPoints)

	// Both settlements land on the same (week, courier) row.
	entries, err := s.RankingEntries(ctx, "2026-W35")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, courier.ID, entries[0].CourierID)
	assert.Equal(t, 20, entries[0].Points)
}
