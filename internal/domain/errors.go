package domain

import "errors"

var (
	// ErrComparisonUnavailable is returned when a snapshot could not be
	// obtained at all. It never stands for an acceptable verdict.
	ErrComparisonUnavailable = errors.New("comparison unavailable")

	// ErrGateFailed is returned alongside a verdict that is not green.
	ErrGateFailed = errors.New("regression gate failed")

	// ErrPromotionRefused is returned when a baseline write is not backed
	// by a green verdict for the same ref and snapshot.
	ErrPromotionRefused = errors.New("baseline promotion refused")
)
