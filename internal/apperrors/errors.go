package apperrors

import "errors"

var (
	ErrInvalidRequest            = errors.New("invalid request")
	ErrUserNotFound              = errors.New("user not found")
	ErrIdeaNotFound              = errors.New("idea not found")
	ErrPurchaseNotFound          = errors.New("purchase not found")
	ErrInternalServer            = errors.New("internal server error")
	ErrInvalidAuthHeader         = errors.New("invalid or missing Authorization header")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrInsufficientFunds         = errors.New("insufficient wallet balance")
	ErrMinimumNotMet             = errors.New("amount is below the minimum")
	ErrMaximumExceeded           = errors.New("amount is above the maximum")
	ErrPendingWithdrawalExists   = errors.New("a withdrawal request is already in flight")
	ErrPayoutAccountNotConnected = errors.New("payout account is not connected")
	ErrDuplicateSettlement       = errors.New("settlement already applied")
	ErrSignatureInvalid          = errors.New("webhook signature verification failed")
	ErrIdeaNotPublished          = errors.New("idea is not published")
	ErrOwnIdea                   = errors.New("cannot buy your own idea")
	ErrAlreadyPurchased          = errors.New("idea already purchased")
	ErrExclusiveAlreadyClaimed   = errors.New("exclusive idea has already been claimed")
	ErrCreatorPayoutNotSetUp     = errors.New("creator payment account not set up")
)
