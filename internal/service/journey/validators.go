package journey

import (
	"strings"

	"github.com/shopspring/decimal"
	"shipping/internal/entities"
)

func isValidCity(city string) bool {
	city = strings.TrimSpace(city)
	return city != "" && len(city) <= 100
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

func isValidStopPoint(stopPoint entities.StopPoint) bool {
	return isValidCity(stopPoint.City) &&
		isValidAddress(stopPoint.Address) &&
		!stopPoint.CollectionDate.IsZero()
}
