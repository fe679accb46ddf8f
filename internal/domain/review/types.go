package review

import "groupbuy-service/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.Class("rating must be between 1 and 5", errs.ErrInvalidArgument)
	ErrCommentTooLong = errs.Class("comment exceeds maximum length", errs.ErrInvalidArgument)
	ErrStatsNotFound  = errs.Class("rating stats not found for reviewed user", errs.ErrNotFound)
)
