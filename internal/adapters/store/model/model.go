package model

import "time"

type UserType string

const (
	UserTypeClient  UserType = "cliente"
	UserTypeCourier UserType = "motoboy"
)

type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Login        string `gorm:"unique"`
	PasswordHash string
	Name         string
	Phone        string
	Type         UserType `gorm:"index"`
	ID           uint     `gorm:"primarykey"`
	Balance      float64
	Deliveries   int
	WeekPoints   int
	XP           int
	Level        int
}

type Admin struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Login        string `gorm:"unique"`
	PasswordHash string
	ID           uint `gorm:"primarykey"`
}

type DeliveryStatus string

const (
	DeliveryStateActive     DeliveryStatus = "ativo"
	DeliveryStateInProgress DeliveryStatus = "em andamento"
	DeliveryStateFinished   DeliveryStatus = "finalizada"
)

type StopStatus string

const (
	StopStatePending    StopStatus = "pendente"
	StopStateInProgress StopStatus = "em andamento"
	StopStateDone       StopStatus = "concluída"
)

type Delivery struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
	Origin         string
	Status         DeliveryStatus `gorm:"default:ativo;index"`
	Stops          []DeliveryStop `gorm:"constraint:OnDelete:CASCADE"`
	ID             uint           `gorm:"primarykey"`
	ClientID       uint           `gorm:"index"`
	CourierID      uint           `gorm:"index"`
	DistanceKm     float64
	DurationMin    float64
	ClientPrice    float64
	CourierPayout  float64
	PlatformMargin float64
}

// Stops are stored one row per destination, so the stop statuses can never
// diverge in length from the destination list.
type DeliveryStop struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Address        string
	RecipientName  string
	RecipientPhone string
	Status         StopStatus `gorm:"default:pendente"`
	ID             uint       `gorm:"primarykey"`
	DeliveryID     uint       `gorm:"index"`
	Position       int
}

type LinkStatus string

const (
	LinkStateActive   LinkStatus = "ativo"
	LinkStateInactive LinkStatus = "inativo"
	LinkStateRemoved  LinkStatus = "removido"
)

type Link struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    LinkStatus `gorm:"default:ativo"`
	ID        uint       `gorm:"primarykey"`
	ClientID  uint       `gorm:"index"`
	CourierID uint       `gorm:"index"`
}

type WithdrawalStatus string

const (
	WithdrawalStatePending WithdrawalStatus = "pendente"
	WithdrawalStatePaid    WithdrawalStatus = "pago"
)

type Withdrawal struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	PaidAt    *time.Time
	PixKey    string
	Status    WithdrawalStatus `gorm:"default:pendente;index"`
	ID        uint             `gorm:"primarykey"`
	CourierID uint             `gorm:"index"`
	Amount    float64
}

// RankingEntry holds one courier's score for one week. Ranks are assigned on
// read, so concurrent settlements touch disjoint rows.
type RankingEntry struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Week      string `gorm:"index:idx_week_courier,unique"`
	Name      string
	ID        uint `gorm:"primarykey"`
	CourierID uint `gorm:"index:idx_week_courier,unique"`
	Points    int
	Medals    int
}

type Medal struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Code        string `gorm:"unique"`
	Name        string
	Description string
	ID          uint `gorm:"primarykey"`
}

type UserMedal struct {
	CreatedAt time.Time
	MedalCode string
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index"`
}

// Settlement is the outcome of finalizing a stop.
type Settlement struct {
	Finished       bool
	ClientPrice    float64
	CourierPayout  float64
	PlatformMargin float64
	WeekPoints     int
	XP             int
	Level          int
}
