package scheduling

import (
	"strings"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// NormalizeBrand приводит бренд к ключу для регистронезависимого сравнения
func NormalizeBrand(brand string) string {
	return strings.ToLower(strings.TrimSpace(brand))
}

// FilterByBrand возвращает транспорт указанного бренда.
// Сравнение регистронезависимое, порядок входа сохраняется.
func FilterByBrand(vehicles []*domain.Vehicle, brand string) []*domain.Vehicle {
	key := NormalizeBrand(brand)

	result := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if NormalizeBrand(v.Brand) == key {
			result = append(result, v)
		}
	}
	return result
}
