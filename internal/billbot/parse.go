package billbot

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	errMissingArgs  = errors.New("bill name and price are required")
	errInvalidPrice = errors.New("price must be a positive number")
)

var decimalPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// parseBill reads "<bill name...> <price>". The last whitespace-separated
// token is the price; everything before it is the name.
func parseBill(args string) (string, float64, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", 0, errMissingArgs
	}

	last := fields[len(fields)-1]
	if !decimalPattern.MatchString(last) {
		return "", 0, errInvalidPrice
	}
	price, err := strconv.ParseFloat(last, 64)
	if err != nil || price <= 0 {
		return "", 0, errInvalidPrice
	}

	return strings.Join(fields[:len(fields)-1], " "), price, nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
