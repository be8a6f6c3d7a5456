// Package domain defines the core value types of SurveyAuth.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseIdentity converts textual input into an identity.
//
// Integers are taken as-is. Decimal fractions are floored, so "4.9"
// becomes 4 and "-0.5" becomes -1. Negative results are returned, not
// rejected: derivation performs the negativity check after flooring.
func ParseIdentity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidArgument.WithDetails("identity is empty")
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidArgument.WithDetails("identity is not a number: " + s).WithCause(err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidArgument.WithDetails("identity is not finite: " + s)
	}

	f = math.Floor(f)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrInvalidArgument.WithDetails("identity out of range: " + s)
	}
	return int64(f), nil
}
