package domainerrors

import "nachna/shared/common/errs"

var (
	ErrWorkshopNotFound = errs.ResourceNotFoundError("the workshop with given id was not found")
)
