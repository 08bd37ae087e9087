package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/turboexpress"
	"go.uber.org/zap"
)

//	@Summary	List users
//	@Schemes
//	@Description	lista de usuários para o painel administrativo
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tUser	"usuários"
//	@failure		401	"não autenticado"
//	@failure		403	"não é administrador"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/admin/users [get]
func (s *Server) handlerAdminUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := s.service.ListUsers(ctx)
	if err != nil {
		s.log.Error("failed get users", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tUser{}
	for _, user := range users {
		response = append(response, tUser{
			ID:                 user.ID,
			Login:              user.Login,
			Nome:               user.Name,
			Telefone:           user.Phone,
			Tipo:               user.Type,
			SaldoDisponivel:    user.Balance,
			EntregasConcluidas: user.Deliveries,
			PontosSemana:       user.WeekPoints,
			XP:                 user.XP,
			Nivel:              user.Level,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List withdrawals
//	@Schemes
//	@Description	saques de todos os motoboys, filtráveis por status
//	@Tags			admin
//	@Produce		json
//	@Param			status	query	string	false	"pendente ou pago"
//	@Success		200		{array}	tWithdrawal	"saques"
//	@failure		401		"não autenticado"
//	@failure		403		"não é administrador"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/admin/withdrawals [get]
func (s *Server) handlerAdminWithdrawals(c *gin.Context) {
	ctx := c.Request.Context()

	withdrawals, err := s.service.Withdrawals(ctx, model.WithdrawalStatus(c.Query("status")))
	if err != nil {
		s.log.Error("failed get withdrawals", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tWithdrawal{}
	for _, withdrawal := range withdrawals {
		response = append(response, newTWithdrawal(withdrawal))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Pay withdrawal
//	@Schemes
//	@Description	marca um saque pendente como pago
//	@Tags			admin
//	@Produce		json
//	@Param			id	path	integer	true	"withdrawal id"
//	@Success		200	"saque pago"
//	@failure		400	"identificador inválido"
//	@failure		401	"não autenticado"
//	@failure		403	"não é administrador"
//	@failure		404	"saque não encontrado"
//	@failure		409	"saque já pago"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/admin/withdrawals/{id}/pay [post]
func (s *Server) handlerAdminPayWithdrawal(c *gin.Context) {
	ctx := c.Request.Context()

	withdrawalID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}

	if err := s.service.PayWithdrawal(ctx, withdrawalID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrWithdrawalPaid) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed pay withdrawal", zap.Uint("withdrawalID", withdrawalID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saque pago"})
}

//	@Summary	Rebuild ranking
//	@Schemes
//	@Description	reconstrói o ranking de uma semana a partir das pontuações correntes
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			week	body	tRebuildRanking	false	"semana, vazio = corrente"
//	@Success		200		"ranking reconstruído"
//	@failure		401		"não autenticado"
//	@failure		403		"não é administrador"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/admin/ranking/rebuild [post]
func (s *Server) handlerAdminRebuildRanking(c *gin.Context) {
	ctx := c.Request.Context()

	jBody := tRebuildRanking{}
	bBody, ok := s.readBody(c)
	if !ok {
		return
	}
	if len(bBody) > 0 {
		if err := json.Unmarshal(bBody, &jBody); err != nil {
			s.log.Error("failed parse body", zap.Error(err))
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	week, err := s.service.RebuildRanking(ctx, jBody.Semana)
	if err != nil {
		s.log.Error("failed rebuild ranking", zap.String("week", week), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ranking reconstruído", "semana": week})
}

//	@Summary	Create medal
//	@Schemes
//	@Description	cadastra uma medalha no catálogo
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			medal	body	tMedal	true	"medal"
//	@Success		201		"medalha criada"
//	@failure		400		"dados inválidos"
//	@failure		401		"não autenticado"
//	@failure		403		"não é administrador"
//	@failure		409		"código já cadastrado"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/admin/medals [post]
func (s *Server) handlerAdminCreateMedal(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tMedal{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.CreateMedal(ctx, jBody.Codigo, jBody.Nome, jBody.Descricao); err != nil {
		if errors.Is(err, turboexpress.ErrMedalNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrMedalNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed create medal", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusCreated)
}

//	@Summary	Award medal
//	@Schemes
//	@Description	concede uma medalha do catálogo a um motoboy
//	@Tags			admin
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer		true	"user id"
//	@Param			medal	body	tAwardMedal	true	"medal code"
//	@Success		200		"medalha concedida"
//	@failure		400		"identificador inválido"
//	@failure		401		"não autenticado"
//	@failure		403		"não é administrador"
//	@failure		404		"usuário ou medalha não encontrados"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/admin/users/{id}/medals [post]
func (s *Server) handlerAdminAwardMedal(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tAwardMedal{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.AwardMedal(ctx, userID, jBody.Codigo); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed award medal", zap.Uint("userID", userID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}
