package domain

import "time"

// StatusForDowntime возвращает статус транспорта для типа блока простоя.
// refueling переводит в refueling, все остальные типы (maintenance,
// repairs, other) переводят в maintenance.
func StatusForDowntime(t DowntimeType) VehicleStatus {
	if t == DowntimeRefueling {
		return VehicleRefueling
	}
	return VehicleMaintenance
}

// StatusOnDowntimeCreated вычисляет автоматический переход статуса
// транспорта при создании блока простоя.
//
// Переход срабатывает, только если интервал блока содержит текущий момент
// и транспорт сейчас в статусе available. Во всех остальных случаях
// статус не меняется (changed = false).
func StatusOnDowntimeCreated(vehicleStatus VehicleStatus, block *DowntimeBlock, now time.Time) (VehicleStatus, bool) {
	if block.Completed {
		return vehicleStatus, false
	}
	if !block.Contains(now) {
		return vehicleStatus, false
	}
	if vehicleStatus != VehicleAvailable {
		return vehicleStatus, false
	}
	return StatusForDowntime(block.Type), true
}

// StatusOnDowntimeCompleted вычисляет автоматический переход статуса
// транспорта при завершении блока простоя (completed: false -> true).
//
// Транспорт возвращается в available только из maintenance или refueling.
// Статусы broken и in_use установлены не простоем, их завершение блока
// не трогает.
func StatusOnDowntimeCompleted(vehicleStatus VehicleStatus) (VehicleStatus, bool) {
	if vehicleStatus == VehicleMaintenance || vehicleStatus == VehicleRefueling {
		return VehicleAvailable, true
	}
	return vehicleStatus, false
}
