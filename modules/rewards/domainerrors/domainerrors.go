package domainerrors

import "nachna/shared/common/errs"

var (
	ErrNoRewardAccount      = errs.ResourceNotFoundError("no reward account for the given user")
	ErrInsufficientPoints   = errs.BusinessRuleError("insufficient reward points")
	ErrNothingToRedeem      = errs.BusinessRuleError("points to redeem must be greater than 0")
	ErrRedemptionExceedsMax = errs.ConflictError("points to redeem exceed the maximum redeemable for this order")
)
