package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/turboexpress/backend/docs"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/settlement"
	"github.com/turboexpress/backend/internal/core/turboexpress"
	"github.com/turboexpress/backend/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"
	adminKey   = "Admin"
)

type turboI interface {
	Register(ctx context.Context, login, password, name, phone string, userType model.UserType) error
	Authorization(ctx context.Context, login, password string) (model.User, error)
	AdminAuthorization(ctx context.Context, login, password string) (model.Admin, error)
	GetUser(ctx context.Context, id uint) (model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateDelivery(ctx context.Context, clientID uint, in turboexpress.NewDelivery) (model.Delivery, error)
	GetDelivery(ctx context.Context, userID, deliveryID uint) (model.Delivery, error)
	AvailableDeliveries(ctx context.Context) ([]*model.Delivery, error)
	UserDeliveries(ctx context.Context, userID uint) ([]*model.Delivery, error)
	ClaimDelivery(ctx context.Context, courierID, deliveryID uint) error
	StartStop(ctx context.Context, courierID, deliveryID uint, stopIndex int) error
	FinalizeStop(ctx context.Context, courierID, deliveryID uint, stopIndex int) (model.Settlement, error)
	Ranking(ctx context.Context, week string) (string, []settlement.RankedEntry, error)
	RebuildRanking(ctx context.Context, week string) (string, error)
	CreateLink(ctx context.Context, clientID, courierID uint) (model.Link, error)
	UserLinks(ctx context.Context, userID uint) ([]*model.Link, error)
	SetLinkStatus(ctx context.Context, userID, linkID uint, status model.LinkStatus) error
	RequestWithdrawal(ctx context.Context, courierID uint, amount float64, pixKey string) (model.Withdrawal, error)
	UserWithdrawals(ctx context.Context, courierID uint) ([]*model.Withdrawal, error)
	Withdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error)
	PayWithdrawal(ctx context.Context, id uint) error
	Medals(ctx context.Context) ([]*model.Medal, error)
	CreateMedal(ctx context.Context, code, name, description string) error
	AwardMedal(ctx context.Context, userID uint, code string) error
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service turboI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func SetAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

func SetSecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
	}
}

//	@title			Turbo Express
//	@version		1.0
//	@description	API de entregas Turbo Express: clientes, motoboys, vínculos, saques e ranking semanal.
//	@host			localhost:8080
//	@BasePath		/

func New(service turboI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.GzipDecompress(),
	)
	api := s.engine.Group("/api")
	api.Use(s.GzipCompress())
	{
		api.POST("/user/register", s.handlerRegister)
		api.POST("/user/login", s.handlerLogin)
		api.POST("/admin/login", s.handlerAdminLogin)

		authAPI := api.Group("/")
		authAPI.Use(s.Authentication())
		{
			authAPI.POST("/deliveries", s.handlerCreateDelivery)
			authAPI.GET("/deliveries", s.handlerUserDeliveries)
			authAPI.GET("/deliveries/available", s.handlerAvailableDeliveries)
			authAPI.GET("/deliveries/:id", s.handlerGetDelivery)
			authAPI.POST("/deliveries/:id/claim", s.handlerClaimDelivery)
			authAPI.POST("/deliveries/:id/stops/:index/start", s.handlerStartStop)
			authAPI.POST("/deliveries/:id/stops/:index/finish", s.handlerFinishStop)

			authAPI.GET("/ranking", s.handlerRanking)
			authAPI.GET("/ranking/:week", s.handlerRanking)

			authAPI.GET("/balance", s.handlerBalance)
			authAPI.POST("/balance/withdraw", s.handlerWithdraw)
			authAPI.GET("/withdrawals", s.handlerUserWithdrawals)

			authAPI.POST("/links", s.handlerCreateLink)
			authAPI.GET("/links", s.handlerUserLinks)
			authAPI.POST("/links/:id/status", s.handlerLinkStatus)

			authAPI.GET("/medals", s.handlerMedals)
		}

		adminAPI := api.Group("/admin")
		adminAPI.Use(s.Authentication(), s.AdminOnly())
		{
			adminAPI.GET("/users", s.handlerAdminUsers)
			adminAPI.GET("/withdrawals", s.handlerAdminWithdrawals)
			adminAPI.POST("/withdrawals/:id/pay", s.handlerAdminPayWithdrawal)
			adminAPI.POST("/ranking/rebuild", s.handlerAdminRebuildRanking)
			adminAPI.POST("/medals", s.handlerAdminCreateMedal)
			adminAPI.POST("/users/:id/medals", s.handlerAdminAwardMedal)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func (s *Server) checkAdmin(c *gin.Context) bool {
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return false
	}

	jwtRest := jwt.New(s.secret)
	value, ok, err := jwtRest.Verify(cookieUserID.Value, adminKey)
	if err != nil || !ok {
		return false
	}

	return value == "true"
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) setAuthCookie(c *gin.Context, claims map[string]string) error {
	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(claims)
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

func (s *Server) authorization(c *gin.Context, login, password string) (model.User, error) {
	ctx := c.Request.Context()
	user, err := s.service.Authorization(ctx, login, password)
	if err != nil {
		return user, fmt.Errorf("failed authorization: %w", err)
	}

	if err := s.setAuthCookie(c, map[string]string{
		cookieKey: strconv.Itoa(int(user.ID)),
	}); err != nil {
		return user, err
	}

	return user, nil
}

func (s *Server) adminAuthorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	admin, err := s.service.AdminAuthorization(ctx, login, password)
	if err != nil {
		return fmt.Errorf("failed admin authorization: %w", err)
	}

	return s.setAuthCookie(c, map[string]string{
		cookieKey: strconv.Itoa(int(admin.ID)),
		adminKey:  "true",
	})
}
