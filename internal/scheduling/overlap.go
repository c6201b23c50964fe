package scheduling

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// overlaps проверяет пересечение существующего интервала [s, e)
// с запрошенным [start, end).
//
// Тройная дизъюнкция сохранена в исходном виде, потому что от неё зависит
// граничное поведение: бронь, заканчивающаяся ровно в start, НЕ конфликтует;
// бронь, начинающаяся ровно в end, НЕ конфликтует; вложенные и объемлющие
// интервалы конфликтуют всегда.
//
// Примеры:
// - Запрос 11:30-12:00, бронь 11:20-11:40 → конфликт (пересечение 11:30-11:40)
// - Запрос 11:30-12:00, бронь 11:00-11:30 → нет конфликта (граничат)
// - Запрос 11:30-12:00, бронь 12:00-12:30 → нет конфликта (граничат)
// - Запрос 11:30-12:00, бронь 11:40-11:50 → конфликт (вложена)
func overlaps(s, e, start, end time.Time) bool {
	// Вырожденный запрос [t, t) - доступность "в момент t".
	// Здесь работает только содержание s <= t < e: интервал,
	// заканчивающийся ровно в t, момент t уже не занимает.
	if start.Equal(end) {
		return !s.After(start) && e.After(start)
	}

	return (!s.After(start) && e.After(start)) ||
		(s.Before(end) && !e.Before(end)) ||
		(!s.Before(start) && !e.After(end))
}

// Conflicts проверяет, конфликтует ли запрошенный интервал с активными
// бронированиями или активными блоками простоя указанного транспорта.
//
// Учитываются только брони со статусом не cancelled/completed
// и блоки простоя с completed=false. Снимки передаются целиком -
// фильтрация по транспорту выполняется здесь.
func Conflicts(vehicleID int64, iv Interval, bookings []*domain.Booking, downtime []*domain.DowntimeBlock) bool {
	for _, b := range bookings {
		if b.VehicleID != vehicleID || !b.IsActive() {
			continue
		}
		if overlaps(b.StartTime, b.EndTime, iv.Start, iv.End) {
			return true
		}
	}

	for _, d := range downtime {
		if d.VehicleID != vehicleID || !d.IsActive() {
			continue
		}
		if overlaps(d.StartTime, d.EndTime, iv.Start, iv.End) {
			return true
		}
	}

	return false
}

// ConflictsExcluding как Conflicts, но игнорирует бронь с указанным ID.
// Используется при обновлении брони: она не должна конфликтовать сама с собой.
func ConflictsExcluding(vehicleID int64, iv Interval, excludeBookingID int64, bookings []*domain.Booking, downtime []*domain.DowntimeBlock) bool {
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}
		filtered = append(filtered, b)
	}
	return Conflicts(vehicleID, iv, filtered, downtime)
}
