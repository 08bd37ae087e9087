package rest_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/turboexpress/backend/internal/adapters/api/rest"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/settlement"
	"github.com/turboexpress/backend/internal/core/turboexpress"
	"github.com/turboexpress/backend/internal/mocks/store"
	"github.com/turboexpress/backend/pkg/jwt"
	"go.uber.org/mock/gomock"
)

var (
	cookieKey = "UserID"
	adminKey  = "Admin"
	secretKey = []byte("secret")
)

func newTestEngine(t *testing.T, ctx context.Context, storeMock *store.MockStore) *gin.Engine {
	t.Helper()

	cfg := &turboexpress.Config{
		MaxActiveDeliveries:   5,
		RankingRebuildEnabled: false,
	}
	service := turboexpress.New(ctx, cfg, storeMock)
	server, err := rest.New(service, rest.SetSecretKey(secretKey))
	assert.NoError(t, err)

	return server.Engine()
}

func addAuthCookie(t *testing.T, w *httptest.ResponseRecorder, r *http.Request, userID uint, admin bool) {
	t.Helper()

	claims := map[string]string{
		cookieKey: strconv.Itoa(int(userID)),
	}
	if admin {
		claims[adminKey] = "true"
	}

	jwtRest := jwt.New(secretKey)
	signedCookie, err := jwtRest.Create(claims)
	assert.NoError(t, err)
	userCookie := &http.Cookie{
		Name:  "token",
		Value: signedCookie,
		Path:  "/",
	}
	r.AddCookie(userCookie)
	http.SetCookie(w, userCookie)
}

func TestServer_handlerRegister(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		userType string
		status   int
	}{
		{
			name:     "correct",
			login:    "maria",
			password: "pass",
			userType: "cliente",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			userType: "cliente",
			status:   http.StatusBadRequest,
		},
		{
			name:     "bad user type",
			login:    "maria",
			password: "pass",
			userType: "gerente",
			status:   http.StatusBadRequest,
		},
		{
			name:     "not unique",
			login:    "maria",
			password: "pass",
			userType: "motoboy",
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			if tt.status != http.StatusBadRequest {
				if tt.status == http.StatusConflict {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any()).
						Return(errstore.ErrLoginNotUnique).
						Times(1)
				} else {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any()).
						Return(nil).
						Times(1)
					hashPass, err := turboexpress.HashPassword(tt.password)
					assert.NoError(t, err)
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: hashPass,
						}, nil).
						Times(1)
				}
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "senha":%q, "tipo":%q}`, tt.login, tt.password, tt.userType))
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerLogin(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "maria",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "unauthorize",
			login:    "maria",
			password: "pass",
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			hashPass, err := turboexpress.HashPassword(tt.password)
			assert.NoError(t, err)
			if tt.status != http.StatusBadRequest {
				if tt.status == http.StatusUnauthorized {
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: "wrong pass",
						}, nil).
						Times(1)
				} else {
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: hashPass,
						}, nil).
						Times(1)
				}
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "senha":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err = result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerCreateDelivery(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		userID uint
		body   string
		status int
	}{
		{
			name:   "correct",
			userID: 1,
			body:   `{"origem":"Av. Paulista, 1000", "distanciaKm":10, "destinos":[{"endereco":"Rua A, 1"},{"endereco":"Rua B, 2"}]}`,
			status: http.StatusCreated,
		},
		{
			name:   "no stops",
			userID: 1,
			body:   `{"origem":"Av. Paulista, 1000", "distanciaKm":10, "destinos":[]}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unauthorize",
			userID: 1,
			body:   `{"origem":"Av. Paulista, 1000", "distanciaKm":10, "destinos":[{"endereco":"Rua A, 1"}]}`,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status == http.StatusCreated {
				storeMock.EXPECT().
					CreateDelivery(ctx, gomock.Any()).
					Return(nil).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/deliveries", strings.NewReader(tt.body))
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerGetDelivery(t *testing.T) {
	ctx := context.Background()
	delivery := model.Delivery{
		ID:         10,
		ClientID:   1,
		CourierID:  2,
		Origin:     "Av. Paulista, 1000",
		Status:     model.DeliveryStateInProgress,
		DistanceKm: 10,
		Stops: []model.DeliveryStop{
			{DeliveryID: 10, Address: "Rua A, 1", Status: model.StopStatePending, Position: 0},
		},
	}
	tests := []struct {
		name     string
		userID   uint
		status   int
		errstore error
	}{
		{
			name:   "client sees own delivery",
			userID: 1,
			status: http.StatusOK,
		},
		{
			name:   "courier sees own delivery",
			userID: 2,
			status: http.StatusOK,
		},
		{
			name:   "stranger gets not found",
			userID: 9,
			status: http.StatusNotFound,
		},
		{
			name:     "not found",
			userID:   1,
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:   "unauthorize",
			userID: 1,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusUnauthorized {
				storeMock.EXPECT().
					GetDelivery(ctx, uint(10)).
					Return(delivery, tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/deliveries/10", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"origem":"Av. Paulista, 1000"`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerClaimDelivery(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		userID   uint
		status   int
		errstore error
	}{
		{
			name:   "ok",
			userID: 2,
			status: http.StatusOK,
		},
		{
			name:     "not found",
			userID:   2,
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:     "not courier",
			userID:   1,
			status:   http.StatusForbidden,
			errstore: errstore.ErrUserNotCourier,
		},
		{
			name:     "not available",
			userID:   2,
			status:   http.StatusConflict,
			errstore: errstore.ErrDeliveryNotAvailable,
		},
		{
			name:     "too many active",
			userID:   2,
			status:   http.StatusConflict,
			errstore: errstore.ErrTooManyDeliveries,
		},
		{
			name:   "unauthorize",
			userID: 2,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusUnauthorized {
				storeMock.EXPECT().
					ClaimDelivery(ctx, uint(10), tt.userID, 5).
					Return(tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/deliveries/10/claim", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerFinishStop(t *testing.T) {
	ctx := context.Background()
	week := settlement.WeekID(time.Now())
	tests := []struct {
		name       string
		userID     uint
		index      string
		settlement model.Settlement
		status     int
		errstore   error
	}{
		{
			name:   "stop done delivery open",
			userID: 2,
			index:  "0",
			settlement: model.Settlement{
				Finished: false,
			},
			status: http.StatusOK,
		},
		{
			name:   "last stop settles delivery",
			userID: 2,
			index:  "1",
			settlement: model.Settlement{
				Finished:       true,
				ClientPrice:    20,
				CourierPayout:  18,
				PlatformMargin: 2,
				WeekPoints:     10,
				XP:             10,
			},
			status: http.StatusOK,
		},
		{
			name:     "another courier",
			userID:   3,
			index:    "0",
			status:   http.StatusForbidden,
			errstore: errstore.ErrCourierMismatch,
		},
		{
			name:     "index out of range",
			userID:   2,
			index:    "5",
			status:   http.StatusBadRequest,
			errstore: errstore.ErrStopIndexOutOfRange,
		},
		{
			name:     "already finished",
			userID:   2,
			index:    "1",
			status:   http.StatusConflict,
			errstore: errstore.ErrDeliveryFinished,
		},
		{
			name:     "not found",
			userID:   2,
			index:    "0",
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:   "unauthorize",
			userID: 2,
			index:  "0",
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusUnauthorized {
				index, err := strconv.Atoi(tt.index)
				assert.NoError(t, err)
				storeMock.EXPECT().
					FinalizeStop(ctx, uint(10), tt.userID, index, week).
					Return(tt.settlement, tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/deliveries/10/stops/"+tt.index+"/finish", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK && tt.settlement.Finished {
				assert.Contains(t, w.Body.String(), "precoCliente")
				assert.Contains(t, w.Body.String(), "entrega finalizada")
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerRanking(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		week     string
		entries  []*model.RankingEntry
		status   int
		errstore error
	}{
		{
			name: "ok",
			week: "2026-W35",
			entries: []*model.RankingEntry{
				{CourierID: 1, Name: "Ana", Points: 50, Week: "2026-W35"},
				{CourierID: 2, Name: "Bruno", Points: 30, Week: "2026-W35"},
			},
			status: http.StatusOK,
		},
		{
			name:     "no content",
			week:     "2026-W01",
			status:   http.StatusNoContent,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:   "unauthorize",
			week:   "2026-W35",
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusUnauthorized {
				storeMock.EXPECT().
					RankingEntries(ctx, tt.week).
					Return(tt.entries, tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/ranking/"+tt.week, http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, 1, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"semana":"`+tt.week+`"`)
				assert.Contains(t, w.Body.String(), `"posicao":1`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerBalance(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		userID uint
		user   model.User
		status int
	}{
		{
			name:   "ok",
			userID: 2,
			user: model.User{
				Type:       model.UserTypeCourier,
				Balance:    144,
				Deliveries: 8,
				WeekPoints: 80,
				XP:         80,
			},
			status: http.StatusOK,
		},
		{
			name:   "unauthorize",
			userID: 2,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.name == "ok" {
				storeMock.EXPECT().
					GetUserByID(ctx, tt.userID).
					Return(tt.user, nil).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/balance", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"saldoDisponivel":144`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerWithdraw(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		userID   uint
		amount   float64
		pixKey   string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			userID: 2,
			amount: 50,
			pixKey: "maria@pix.br",
			status: http.StatusOK,
		},
		{
			name:   "unauthorize",
			userID: 2,
			amount: 50,
			pixKey: "maria@pix.br",
			status: http.StatusUnauthorized,
		},
		{
			name:     "no money",
			userID:   2,
			amount:   500,
			pixKey:   "maria@pix.br",
			status:   http.StatusPaymentRequired,
			errstore: errstore.ErrBalansNotEnough,
		},
		{
			name:     "not courier",
			userID:   1,
			amount:   50,
			pixKey:   "maria@pix.br",
			status:   http.StatusForbidden,
			errstore: errstore.ErrUserNotCourier,
		},
		{
			name:   "bad amount",
			userID: 2,
			amount: -1,
			pixKey: "maria@pix.br",
			status: http.StatusBadRequest,
		},
		{
			name:   "empty pix key",
			userID: 2,
			amount: 50,
			pixKey: "",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.name == "ok" || tt.errstore != nil {
				storeMock.EXPECT().
					CreateWithdrawal(ctx, tt.userID, tt.amount, tt.pixKey).
					Return(model.Withdrawal{CourierID: tt.userID, Amount: tt.amount, PixKey: tt.pixKey, Status: model.WithdrawalStatePending}, tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"valor":%v, "chavePix":%q}`, tt.amount, tt.pixKey))
			r := httptest.NewRequest(http.MethodPost, "/api/balance/withdraw", body)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerUserWithdrawals(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		userID   uint
		status   int
		errstore error
	}{
		{
			name:   "ok",
			userID: 2,
			status: http.StatusOK,
		},
		{
			name:     "no content",
			userID:   2,
			status:   http.StatusNoContent,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:   "unauthorize",
			userID: 2,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status != http.StatusUnauthorized {
				storeMock.EXPECT().
					UserWithdrawals(ctx, tt.userID).
					Return([]*model.Withdrawal{{CourierID: tt.userID, Amount: 50, PixKey: "maria@pix.br"}}, tt.errstore).
					Times(1)
			}
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/withdrawals", http.NoBody)
			if tt.status != http.StatusUnauthorized {
				addAuthCookie(t, w, r, tt.userID, false)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerCreateLink(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusCreated,
		},
		{
			name:     "courier not found",
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:     "target not courier",
			status:   http.StatusBadRequest,
			errstore: errstore.ErrUserNotCourier,
		},
		{
			name:     "already linked",
			status:   http.StatusConflict,
			errstore: errstore.ErrLinkExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				CreateLink(ctx, gomock.Any()).
				Return(tt.errstore).
				Times(1)
			engin := newTestEngine(t, ctx, storeMock)

			w := httptest.NewRecorder()
			body := strings.NewReader(`{"motoboyId":2}`)
			r := httptest.NewRequest(http.MethodPost, "/api/links", body)
			addAuthCookie(t, w, r, 1, false)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}
