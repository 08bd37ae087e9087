package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/mocks/store"
	"go.uber.org/mock/gomock"
)

func TestServer_handlerAdminUsers(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		admin  bool
		status int
	}{
		{
			name:   "ok",
			admin:  true,
			status: http.StatusOK,
		},
		{
			name:   "not admin",
			admin:  false,
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.admin {
				storeMock.EXPECT().
					ListUsers(ctx).
					Return([]*model.User{
						{Login: "maria", Type: model.UserTypeClient},
						{Login: "joao", Type: model.UserTypeCourier, Balance: 120},
					}, nil).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/users", http.NoBody)
			addAuthCookie(t, w, r, 1, tt.admin)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"login":"joao"`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminWithdrawals(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := store.NewMockStore(ctrl)
	storeMock.EXPECT().
		Withdrawals(ctx, model.WithdrawalStatePending).
		Return([]*model.Withdrawal{
			{CourierID: 2, Amount: 50, PixKey: "maria@pix.br", Status: model.WithdrawalStatePending},
		}, nil).
		Times(1)
	engin := newTestEngine(t, ctx, storeMock)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals?status=pendente", http.NoBody)
	addAuthCookie(t, w, r, 1, true)

	engin.ServeHTTP(w, r)

	result := w.Result()

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, w.Body.String(), `"chavePix":"maria@pix.br"`)

	err := result.Body.Close()
	assert.NoError(t, err)
}

func TestServer_handlerAdminPayWithdrawal(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:     "already paid",
			status:   http.StatusConflict,
			errstore: errstore.ErrWithdrawalPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				PayWithdrawal(ctx, uint(7)).
				Return(tt.errstore).
				Times(1)
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/7/pay", http.NoBody)
			addAuthCookie(t, w, r, 1, true)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminRebuildRanking(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := store.NewMockStore(ctrl)
	storeMock.EXPECT().
		RebuildRanking(ctx, "2026-W30").
		Return(nil).
		Times(1)
	engin := newTestEngine(t, ctx, storeMock)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"semana":"2026-W30"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/admin/ranking/rebuild", body)
	addAuthCookie(t, w, r, 1, true)

	engin.ServeHTTP(w, r)

	result := w.Result()

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, w.Body.String(), `"semana":"2026-W30"`)

	err := result.Body.Close()
	assert.NoError(t, err)
}

func TestServer_handlerAdminCreateMedal(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		body     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			body:   `{"codigo":"sprint-10", "nome":"Dez entregas na semana"}`,
			status: http.StatusCreated,
		},
		{
			name:   "empty code",
			body:   `{"codigo":"", "nome":"Dez entregas na semana"}`,
			status: http.StatusBadRequest,
		},
		{
			name:     "duplicated code",
			body:     `{"codigo":"sprint-10", "nome":"Dez entregas na semana"}`,
			status:   http.StatusConflict,
			errstore: errstore.ErrMedalNotUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusBadRequest {
				storeMock.EXPECT().
					CreateMedal(ctx, gomock.Any()).
					Return(tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/medals", strings.NewReader(tt.body))
			addAuthCookie(t, w, r, 1, true)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminAwardMedal(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "user not found",
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				AwardMedal(ctx, uint(2), "sprint-10").
				Return(tt.errstore).
				Times(1)
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			body := strings.NewReader(`{"codigo":"sprint-10"}`)
			r := httptest.NewRequest(http.MethodPost, "/api/admin/users/2/medals", body)
			addAuthCookie(t, w, r, 1, true)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}
