package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtpToken    = errors.New("invalid or expired otp token")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrTierDenied         = errors.New("subscription tier does not allow access")
	ErrClassNotFound      = errors.New("class not found")
	ErrClassFull          = errors.New("class is full")
	ErrAlreadyReserved    = errors.New("class already reserved")
	ErrReservationMissing = errors.New("reservation not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrOrderNotFound      = errors.New("order not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketClosed       = errors.New("ticket is closed")
	ErrNotOwner           = errors.New("resource does not belong to caller")
	ErrCoachRequired      = errors.New("referenced account is not a coach")
	ErrReceiverNotFound   = errors.New("receiver not found")
)
