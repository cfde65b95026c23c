package dice

import (
	"errors"
)

var (
	errInvalidCount = errors.New("invalid dice count")
	errInvalidSize  = errors.New("invalid dice size")
	errEmptyRange   = errors.New("empty range")
)

// Index draws a uniform index in [0, n)
func Index(r Roller, n int) (int, error) {
	if n < 1 {
		return 0, errEmptyRange
	}

	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

// Between draws a uniform integer in [low, high], both inclusive
func Between(r Roller, low, high int) (int, error) {
	if high < low {
		return 0, errEmptyRange
	}

	result, err := r.Roll(1, high-low+1, low-1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

func validate(count, sides int) error {
	if count < 1 {
		return errInvalidCount
	}
	if sides < 1 {
		return errInvalidSize
	}
	return nil
}
