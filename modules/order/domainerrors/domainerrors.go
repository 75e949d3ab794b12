package domainerrors

import "nachna/shared/common/errs"

var (
	ErrOrderNotFound  = errs.ResourceNotFoundError("the order with given id was not found")
	ErrOrderNotOwned  = errs.AuthenticationError("the order belongs to another user")
	ErrPaymentFailure = errs.OperationFailedError("payment gateway request failed")
)
