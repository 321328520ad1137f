package service

import (
	"github.com/shopspring/decimal"

	"ratehub/internal/model"
)

// emptyAverage is the aggregate of a store nobody has rated yet.
const emptyAverage = "0.0"

// AverageRating returns the arithmetic mean of a rating set, formatted to
// exactly one fractional digit. The empty set yields "0.0". Every aggregate
// shown anywhere in the system comes from this function.
func AverageRating(ratings []model.Rating) string {
	if len(ratings) == 0 {
		return emptyAverage
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Value)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(ratings)))).StringFixed(1)
}
