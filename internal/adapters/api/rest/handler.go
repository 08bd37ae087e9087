package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/turboexpress/backend/internal/adapters/store/errstore"
	"github.com/turboexpress/backend/internal/adapters/store/model"
	"github.com/turboexpress/backend/internal/core/turboexpress"
	"go.uber.org/zap"
)

var (
	msgErrorCloseBody = "failed close body request"
)

func (s *Server) readBody(c *gin.Context) ([]byte, bool) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, true
}

func (s *Server) paramUint(c *gin.Context, name string) (uint, bool) {
	value64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	return uint(value64), true
}

func (s *Server) paramInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

//	@Summary	Register user
//	@Schemes
//	@Description	cadastra cliente ou motoboy
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200				"usuário cadastrado e autenticado"
//	@failure		400				"formato de requisição inválido"
//	@failure		409				"login já cadastrado"
//	@failure		500				"erro interno do servidor"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	err := s.service.Register(ctx, jBody.Login, jBody.Senha, jBody.Nome, jBody.Telefone, model.UserType(jBody.Tipo))
	if err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, turboexpress.ErrLoginNotValid) ||
			errors.Is(err, turboexpress.ErrPasswordNotValid) ||
			errors.Is(err, turboexpress.ErrUserTypeNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err = s.authorization(c, jBody.Login, jBody.Senha); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login user
//	@Schemes
//	@Description	autenticação de cliente ou motoboy
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		"usuário autenticado"
//	@failure		400		"formato de requisição inválido"
//	@failure		401		"login/senha incorretos"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := s.authorization(c, jBody.Login, jBody.Senha)
	if err != nil {
		if errors.Is(err, turboexpress.ErrLoginNotValid) || errors.Is(err, turboexpress.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, turboexpress.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "tipo": user.Type})
}

//	@Summary	Login admin
//	@Schemes
//	@Description	autenticação do painel administrativo
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200		"administrador autenticado"
//	@failure		400		"formato de requisição inválido"
//	@failure		401		"login/senha incorretos"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/admin/login [post]
func (s *Server) handlerAdminLogin(c *gin.Context) {
	unauthorize(c)

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.adminAuthorization(c, jBody.Login, jBody.Senha); err != nil {
		if errors.Is(err, turboexpress.ErrLoginNotValid) || errors.Is(err, turboexpress.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, turboexpress.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("admin authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Create delivery
//	@Schemes
//	@Description	cliente solicita uma entrega com um ou mais destinos
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			delivery	body		tNewDelivery	true	"delivery"
//	@Success		201			{object}	tDelivery		"entrega criada"
//	@failure		400			"dados inválidos"
//	@failure		401			"usuário não autorizado"
//	@failure		500			"erro interno do servidor"
//	@Router			/api/deliveries [post]
func (s *Server) handlerCreateDelivery(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tNewDelivery{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	stops := make([]turboexpress.NewStop, 0, len(jBody.Destinos))
	for _, stop := range jBody.Destinos {
		stops = append(stops, turboexpress.NewStop{
			Address:        stop.Endereco,
			RecipientName:  stop.Destinatario,
			RecipientPhone: stop.TelefoneDestinatario,
		})
	}

	delivery, err := s.service.CreateDelivery(ctx, userID, turboexpress.NewDelivery{
		Origin:      jBody.Origem,
		DistanceKm:  jBody.DistanciaKm,
		DurationMin: jBody.TempoMin,
		Stops:       stops,
	})
	if err != nil {
		if errors.Is(err, turboexpress.ErrOriginNotValid) ||
			errors.Is(err, turboexpress.ErrStopsNotValid) ||
			errors.Is(err, turboexpress.ErrDistanceNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed create delivery", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newTDelivery(&delivery))
}

//	@Summary	List user deliveries
//	@Schemes
//	@Description	entregas do usuário autenticado, como cliente ou motoboy
//	@Tags			delivery
//	@Produce		json
//	@Success		200	{array}	tDelivery	"entregas"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/deliveries [get]
func (s *Server) handlerUserDeliveries(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveries, err := s.service.UserDeliveries(ctx, userID)
	if err != nil {
		s.log.Error("failed get deliveries by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tDelivery{}
	for _, delivery := range deliveries {
		response = append(response, newTDelivery(delivery))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Get delivery
//	@Schemes
//	@Description	detalhe de uma entrega do usuário autenticado
//	@Tags			delivery
//	@Produce		json
//	@Param			id	path		integer		true	"delivery id"
//	@Success		200	{object}	tDelivery	"entrega"
//	@failure		400	"identificador inválido"
//	@failure		401	"usuário não autorizado"
//	@failure		404	"entrega não encontrada"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/deliveries/{id} [get]
func (s *Server) handlerGetDelivery(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}

	delivery, err := s.service.GetDelivery(ctx, userID, deliveryID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed get delivery", zap.Uint("deliveryID", deliveryID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTDelivery(&delivery))
}

//	@Summary	List available deliveries
//	@Schemes
//	@Description	entregas ativas ainda sem motoboy
//	@Tags			delivery
//	@Produce		json
//	@Success		200	{array}	tDelivery	"entregas disponíveis"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/deliveries/available [get]
func (s *Server) handlerAvailableDeliveries(c *gin.Context) {
	ctx := c.Request.Context()

	deliveries, err := s.service.AvailableDeliveries(ctx)
	if err != nil {
		s.log.Error("failed get available deliveries", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tDelivery{}
	for _, delivery := range deliveries {
		response = append(response, newTDelivery(delivery))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Claim delivery
//	@Schemes
//	@Description	motoboy assume uma entrega ativa
//	@Tags			delivery
//	@Produce		json
//	@Param			id	path	integer	true	"delivery id"
//	@Success		200	"entrega assumida"
//	@failure		400	"identificador inválido"
//	@failure		401	"usuário não autorizado"
//	@failure		403	"usuário não é motoboy"
//	@failure		404	"entrega não encontrada"
//	@failure		409	"entrega indisponível ou limite de entregas atingido"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/deliveries/{id}/claim [post]
func (s *Server) handlerClaimDelivery(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}

	if err := s.service.ClaimDelivery(ctx, userID, deliveryID); err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrUserNotCourier) {
			c.Writer.WriteHeader(http.StatusForbidden)
			return
		}
		if errors.Is(err, errstore.ErrDeliveryNotAvailable) || errors.Is(err, errstore.ErrTooManyDeliveries) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed claim delivery", zap.Uint("deliveryID", deliveryID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entrega assumida"})
}

//	@Summary	Start stop
//	@Schemes
//	@Description	motoboy inicia o deslocamento para um destino
//	@Tags			delivery
//	@Produce		json
//	@Param			id		path	integer	true	"delivery id"
//	@Param			index	path	integer	true	"stop index"
//	@Success		200		"destino em andamento"
//	@failure		400		"índice fora do intervalo"
//	@failure		401		"usuário não autorizado"
//	@failure		403		"motoboy não atribuído à entrega"
//	@failure		404		"entrega não encontrada"
//	@failure		409		"entrega ou destino já finalizado"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/deliveries/{id}/stops/{index}/start [post]
func (s *Server) handlerStartStop(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}
	stopIndex, ok := s.paramInt(c, "index")
	if !ok {
		return
	}

	if err := s.service.StartStop(ctx, userID, deliveryID, stopIndex); err != nil {
		s.writeStopError(c, err, deliveryID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "destino em andamento"})
}

//	@Summary	Finish stop
//	@Schemes
//	@Description	motoboy finaliza um destino; com o último destino a entrega é liquidada
//	@Tags			delivery
//	@Produce		json
//	@Param			id		path		integer	true	"delivery id"
//	@Param			index	path		integer	true	"stop index"
//	@Success		200		{object}	tSettlement	"resultado da finalização"
//	@failure		400		"índice fora do intervalo"
//	@failure		401		"usuário não autorizado"
//	@failure		403		"motoboy não atribuído à entrega"
//	@failure		404		"entrega não encontrada"
//	@failure		409		"entrega já finalizada"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/deliveries/{id}/stops/{index}/finish [post]
func (s *Server) handlerFinishStop(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}
	stopIndex, ok := s.paramInt(c, "index")
	if !ok {
		return
	}

	settled, err := s.service.FinalizeStop(ctx, userID, deliveryID, stopIndex)
	if err != nil {
		s.writeStopError(c, err, deliveryID)
		return
	}

	response := tSettlement{
		Message:    "destino concluído",
		Finalizada: settled.Finished,
		Nivel:      settled.Level,
		XP:         settled.XP,
	}
	if settled.Finished {
		response.Message = "entrega finalizada"
		response.PrecoCliente = &settled.ClientPrice
		response.RepasseMotoboy = &settled.CourierPayout
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) writeStopError(c *gin.Context, err error, deliveryID uint) {
	if errors.Is(err, errstore.ErrNotFoundData) {
		c.Writer.WriteHeader(http.StatusNotFound)
		return
	}
	if errors.Is(err, errstore.ErrCourierMismatch) {
		c.Writer.WriteHeader(http.StatusForbidden)
		return
	}
	if errors.Is(err, errstore.ErrStopIndexOutOfRange) {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if errors.Is(err, errstore.ErrDeliveryFinished) || errors.Is(err, errstore.ErrStopFinished) {
		c.Writer.WriteHeader(http.StatusConflict)
		return
	}

	s.log.Error("failed update delivery stop", zap.Uint("deliveryID", deliveryID), zap.Error(err))
	c.Writer.WriteHeader(http.StatusInternalServerError)
}

//	@Summary	Weekly ranking
//	@Schemes
//	@Description	ranking semanal de motoboys; sem parâmetro retorna a semana corrente
//	@Tags			ranking
//	@Produce		json
//	@Param			week	path		string		false	"week id, ex: 2026-W35"
//	@Success		200		{object}	tRanking	"ranking"
//	@Success		204		"semana sem pontuação"
//	@failure		401		"usuário não autorizado"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/ranking/{week} [get]
func (s *Server) handlerRanking(c *gin.Context) {
	ctx := c.Request.Context()

	week, ranked, err := s.service.Ranking(ctx, c.Param("week"))
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get ranking", zap.String("week", week), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := tRanking{Semana: week, Ranking: []tRankingEntry{}}
	for _, entry := range ranked {
		response.Ranking = append(response.Ranking, tRankingEntry{
			Posicao:   entry.Rank,
			MotoboyID: entry.CourierID,
			Nome:      entry.Name,
			Pontos:    entry.Points,
			Medalhas:  entry.Medals,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	User balance
//	@Schemes
//	@Description	saldo, contadores e nível do usuário autenticado
//	@Tags			balance
//	@Produce		json
//	@Success		200	{object}	tBalance	"saldo"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/balance [get]
func (s *Server) handlerBalance(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.service.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		s.log.Error("failed get user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tBalance{
		SaldoDisponivel:    user.Balance,
		EntregasConcluidas: user.Deliveries,
		PontosSemana:       user.WeekPoints,
		XP:                 user.XP,
		Nivel:              user.Level,
	})
}

//	@Summary	Request withdrawal
//	@Schemes
//	@Description	motoboy solicita saque do saldo disponível
//	@Tags			balance
//	@Accept			json
//	@Produce		json
//	@Param			withdraw	body		tWithdraw	true	"withdraw"
//	@Success		200			{object}	tWithdrawal	"saque registrado"
//	@failure		400			"valor ou chave pix inválidos"
//	@failure		401			"usuário não autorizado"
//	@failure		402			"saldo insuficiente"
//	@failure		403			"usuário não é motoboy"
//	@failure		500			"erro interno do servidor"
//	@Router			/api/balance/withdraw [post]
func (s *Server) handlerWithdraw(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tWithdraw{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed marshal body", zap.String("body", string(bBody)), zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	withdrawal, err := s.service.RequestWithdrawal(ctx, userID, jBody.Valor, jBody.ChavePix)
	if err != nil {
		if errors.Is(err, turboexpress.ErrAmountNotValid) || errors.Is(err, turboexpress.ErrPixKeyNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrBalansNotEnough) {
			c.Writer.WriteHeader(http.StatusPaymentRequired)
			return
		}
		if errors.Is(err, errstore.ErrUserNotCourier) {
			c.Writer.WriteHeader(http.StatusForbidden)
			return
		}

		s.log.Error("failed withdraw balance", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTWithdrawal(&withdrawal))
}

//	@Summary	List user withdrawals
//	@Schemes
//	@Description	saques do motoboy autenticado
//	@Tags			balance
//	@Produce		json
//	@Success		200	{array}	tWithdrawal	"saques"
//	@Success		204	"nenhum saque"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/withdrawals [get]
func (s *Server) handlerUserWithdrawals(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	withdrawals, err := s.service.UserWithdrawals(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed getting withdrawals by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tWithdrawal{}
	for _, withdrawal := range withdrawals {
		response = append(response, newTWithdrawal(withdrawal))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create link
//	@Schemes
//	@Description	cliente vincula um motoboy
//	@Tags			link
//	@Accept			json
//	@Produce		json
//	@Param			link	body		tNewLink	true	"link"
//	@Success		201		{object}	tLink		"vínculo criado"
//	@failure		400		"motoboy inválido"
//	@failure		401		"usuário não autorizado"
//	@failure		404		"motoboy não encontrado"
//	@failure		409		"vínculo ativo já existe"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/links [post]
func (s *Server) handlerCreateLink(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tNewLink{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	link, err := s.service.CreateLink(ctx, userID, jBody.MotoboyID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, errstore.ErrUserNotCourier) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrLinkExists) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}

		s.log.Error("failed create link", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, tLink{
		ID:        link.ID,
		ClienteID: link.ClientID,
		MotoboyID: link.CourierID,
		Status:    link.Status,
	})
}

//	@Summary	List user links
//	@Schemes
//	@Description	vínculos do usuário autenticado
//	@Tags			link
//	@Produce		json
//	@Success		200	{array}	tLink	"vínculos"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/links [get]
func (s *Server) handlerUserLinks(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	links, err := s.service.UserLinks(ctx, userID)
	if err != nil {
		s.log.Error("failed get links", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tLink{}
	for _, link := range links {
		response = append(response, tLink{
			ID:        link.ID,
			ClienteID: link.ClientID,
			MotoboyID: link.CourierID,
			Status:    link.Status,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Update link status
//	@Schemes
//	@Description	altera o status de um vínculo (ativo, inativo ou removido)
//	@Tags			link
//	@Accept			json
//	@Produce		plain
//	@Param			id		path	integer		true	"link id"
//	@Param			status	body	tLinkStatus	true	"status"
//	@Success		200		"status atualizado"
//	@failure		400		"status inválido"
//	@failure		401		"usuário não autorizado"
//	@failure		404		"vínculo não encontrado"
//	@failure		500		"erro interno do servidor"
//	@Router			/api/links/{id}/status [post]
func (s *Server) handlerLinkStatus(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	linkID, ok := s.paramUint(c, "id")
	if !ok {
		return
	}

	bBody, ok := s.readBody(c)
	if !ok {
		return
	}

	jBody := tLinkStatus{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	err = s.service.SetLinkStatus(ctx, userID, linkID, model.LinkStatus(jBody.Status))
	if err != nil {
		if errors.Is(err, turboexpress.ErrLinkStatusNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed set link status", zap.Uint("linkID", linkID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	List medals
//	@Schemes
//	@Description	catálogo de medalhas
//	@Tags			ranking
//	@Produce		json
//	@Success		200	{array}	tMedal	"medalhas"
//	@failure		401	"usuário não autorizado"
//	@failure		500	"erro interno do servidor"
//	@Router			/api/medals [get]
func (s *Server) handlerMedals(c *gin.Context) {
	ctx := c.Request.Context()

	medals, err := s.service.Medals(ctx)
	if err != nil {
		s.log.Error("failed get medals", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tMedal{}
	for _, medal := range medals {
		response = append(response, tMedal{
			Codigo:    medal.Code,
			Nome:      medal.Name,
			Descricao: medal.Description,
		})
	}
	c.JSON(http.StatusOK, response)
}
