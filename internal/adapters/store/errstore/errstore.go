package errstore

import "errors"

var (
	ErrNotFoundData    = errors.New("data not found")
	ErrLoginNotUnique  = errors.New("login already registered")
	ErrBalansNotEnough = errors.New("not enough balance")

	ErrDeliveryNotAvailable = errors.New("delivery is not available for claim")
	ErrDeliveryFinished     = errors.New("delivery already finished")
	ErrCourierMismatch      = errors.New("courier is not assigned to delivery")
	ErrStopIndexOutOfRange  = errors.New("stop index out of range")
	ErrStopFinished         = errors.New("stop already finished")
	ErrTooManyDeliveries    = errors.New("courier has too many active deliveries")
	ErrUserNotCourier       = errors.New("user is not a courier")

	ErrLinkExists     = errors.New("active link already exists")
	ErrWithdrawalPaid = errors.New("withdrawal already paid")
	ErrMedalNotUnique = errors.New("medal code already registered")
)
