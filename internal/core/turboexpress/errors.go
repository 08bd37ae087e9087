package turboexpress

import "errors"

var (
	ErrLoginNotValid      = errors.New("login is not valid")
	ErrPasswordNotValid   = errors.New("password is not valid")
	ErrPasswordNotEquale  = errors.New("password is not correct")
	ErrUserTypeNotValid   = errors.New("user type is not valid")
	ErrOriginNotValid     = errors.New("origin address is not valid")
	ErrStopsNotValid      = errors.New("delivery needs at least one stop with address")
	ErrDistanceNotValid   = errors.New("distance is not valid")
	ErrAmountNotValid     = errors.New("amount must be positive")
	ErrPixKeyNotValid     = errors.New("pix key is not valid")
	ErrLinkStatusNotValid = errors.New("link status is not valid")
	ErrMedalNotValid      = errors.New("medal needs code and name")
)
