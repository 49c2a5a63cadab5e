package parcel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// минимальный вес посылки, кг
var minWeight = decimal.NewFromInt(15)

func isValidWeight(weight decimal.Decimal) bool {
	return weight.GreaterThanOrEqual(minWeight)
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidIDCard(idCard string) bool {
	idCard = strings.TrimSpace(idCard)
	return idCard != "" && len(idCard) <= 50
}
