package rest

import (
	"time"

	"github.com/turboexpress/backend/internal/adapters/store/model"
)

type tRegistration struct {
	Login    string `json:"login"`
	Senha    string `json:"senha"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Tipo     string `json:"tipo"`
}

type tAuthorization struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

type tNewStop struct {
	Endereco             string `json:"endereco"`
	Destinatario         string `json:"destinatario"`
	TelefoneDestinatario string `json:"telefoneDestinatario"`
}

type tNewDelivery struct {
	Origem      string     `json:"origem"`
	DistanciaKm float64    `json:"distanciaKm"`
	TempoMin    float64    `json:"tempoMin"`
	Destinos    []tNewStop `json:"destinos"`
}

type tStop struct {
	Endereco             string           `json:"endereco"`
	Destinatario         string           `json:"destinatario,omitempty"`
	TelefoneDestinatario string           `json:"telefoneDestinatario,omitempty"`
	Status               model.StopStatus `json:"status"`
}

type tDelivery struct {
	createdAt        time.Time
	completedAt      *time.Time
	ID               uint                 `json:"id"`
	ClienteID        uint                 `json:"clienteId"`
	MotoboyID        uint                 `json:"motoboyId,omitempty"`
	Origem           string               `json:"origem"`
	Status           model.DeliveryStatus `json:"status"`
	Destinos         []tStop              `json:"destinos"`
	DistanciaKm      float64              `json:"distanciaKm"`
	TempoMin         float64              `json:"tempoMin"`
	PrecoCliente     float64              `json:"precoCliente,omitempty"`
	RepasseMotoboy   float64              `json:"repasseMotoboy,omitempty"`
	MargemPlataforma float64              `json:"margemPlataforma,omitempty"`
	CriadaEm         string               `json:"criadaEm"`
	ConcluidaEm      string               `json:"concluidaEm,omitempty"`
}

func (d *tDelivery) Prepare() *tDelivery {
	d.CriadaEm = d.createdAt.Format(time.RFC3339)
	if d.completedAt != nil {
		d.ConcluidaEm = d.completedAt.Format(time.RFC3339)
	}
	return d
}

func newTDelivery(delivery *model.Delivery) tDelivery {
	stops := make([]tStop, 0, len(delivery.Stops))
	for _, stop := range delivery.Stops {
		stops = append(stops, tStop{
			Endereco:             stop.Address,
			Destinatario:         stop.RecipientName,
			TelefoneDestinatario: stop.RecipientPhone,
			Status:               stop.Status,
		})
	}

	d := tDelivery{
		createdAt:        delivery.CreatedAt,
		completedAt:      delivery.CompletedAt,
		ID:               delivery.ID,
		ClienteID:        delivery.ClientID,
		MotoboyID:        delivery.CourierID,
		Origem:           delivery.Origin,
		Status:           delivery.Status,
		Destinos:         stops,
		DistanciaKm:      delivery.DistanceKm,
		TempoMin:         delivery.DurationMin,
		PrecoCliente:     delivery.ClientPrice,
		RepasseMotoboy:   delivery.CourierPayout,
		MargemPlataforma: delivery.PlatformMargin,
	}
	d.Prepare()
	return d
}

type tSettlement struct {
	Message        string   `json:"message"`
	Finalizada     bool     `json:"finalizada"`
	PrecoCliente   *float64 `json:"precoCliente,omitempty"`
	RepasseMotoboy *float64 `json:"repasseMotoboy,omitempty"`
	Nivel          int      `json:"nivel"`
	XP             int      `json:"xp"`
}

type tBalance struct {
	SaldoDisponivel    float64 `json:"saldoDisponivel"`
	EntregasConcluidas int     `json:"entregasConcluidas"`
	PontosSemana       int     `json:"pontosSemana"`
	XP                 int     `json:"xp"`
	Nivel              int     `json:"nivel"`
}

type tWithdraw struct {
	Valor    float64 `json:"valor"`
	ChavePix string  `json:"chavePix"`
}

type tWithdrawal struct {
	createdAt time.Time
	paidAt    *time.Time
	ID        uint                   `json:"id"`
	MotoboyID uint                   `json:"motoboyId"`
	Valor     float64                `json:"valor"`
	ChavePix  string                 `json:"chavePix"`
	Status    model.WithdrawalStatus `json:"status"`
	CriadoEm  string                 `json:"criadoEm"`
	PagoEm    string                 `json:"pagoEm,omitempty"`
}

func (w *tWithdrawal) Prepare() *tWithdrawal {
	w.CriadoEm = w.createdAt.Format(time.RFC3339)
	if w.paidAt != nil {
		w.PagoEm = w.paidAt.Format(time.RFC3339)
	}
	return w
}

func newTWithdrawal(withdrawal *model.Withdrawal) tWithdrawal {
	w := tWithdrawal{
		createdAt: withdrawal.CreatedAt,
		paidAt:    withdrawal.PaidAt,
		ID:        withdrawal.ID,
		MotoboyID: withdrawal.CourierID,
		Valor:     withdrawal.Amount,
		ChavePix:  withdrawal.PixKey,
		Status:    withdrawal.Status,
	}
	w.Prepare()
	return w
}

type tRankingEntry struct {
	Posicao   int    `json:"posicao"`
	MotoboyID uint   `json:"motoboyId"`
	Nome      string `json:"nome"`
	Pontos    int    `json:"pontos"`
	Medalhas  int    `json:"medalhas"`
}

type tRanking struct {
	Semana  string          `json:"semana"`
	Ranking []tRankingEntry `json:"ranking"`
}

type tNewLink struct {
	MotoboyID uint `json:"motoboyId"`
}

type tLink struct {
	ID        uint             `json:"id"`
	ClienteID uint             `json:"clienteId"`
	MotoboyID uint             `json:"motoboyId"`
	Status    model.LinkStatus `json:"status"`
}

type tLinkStatus struct {
	Status string `json:"status"`
}

type tMedal struct {
	Codigo    string `json:"codigo"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

type tAwardMedal struct {
	Codigo string `json:"codigo"`
}

type tRebuildRanking struct {
	Semana string `json:"semana"`
}

type tUser struct {
	ID                 uint           `json:"id"`
	Login              string         `json:"login"`
	Nome               string         `json:"nome"`
	Telefone           string         `json:"telefone"`
	Tipo               model.UserType `json:"tipo"`
	SaldoDisponivel    float64        `json:"saldoDisponivel"`
	EntregasConcluidas int            `json:"entregasConcluidas"`
	PontosSemana       int            `json:"pontosSemana"`
	XP                 int            `json:"xp"`
	Nivel              int            `json:"nivel"`
}
