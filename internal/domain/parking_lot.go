package domain

import (
	"time"
)

type ParkingLot struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	MotoAvailable    int32     `json:"moto_available"`
	MotoMaxAvailable int32     `json:"moto_max_available"`
	CarAvailable     int32     `json:"car_available"`
	CarMaxAvailable  int32     `json:"car_max_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Version          int32     `json:"-"`
}

// ParkingLotPatch es una actualización parcial: cada campo presente pisa el
// valor almacenado y los ausentes conservan el estado actual.
type ParkingLotPatch struct {
	Name             *string `json:"name"`
	MotoAvailable    *int32  `json:"moto_available"`
	MotoMaxAvailable *int32  `json:"moto_max_available"`
	CarAvailable     *int32  `json:"car_available"`
	CarMaxAvailable  *int32  `json:"car_max_available"`
}

// ResolveParkingLotPatch calcula el estado propuesto de un parqueadero a partir
// del estado actual y de un parche parcial. Para una creación el estado actual
// es el valor cero (nombre vacío y contadores en 0).
func ResolveParkingLotPatch(current ParkingLot, patch ParkingLotPatch) ParkingLot {
	merged := current

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.MotoAvailable != nil {
		merged.MotoAvailable = *patch.MotoAvailable
	}
	if patch.MotoMaxAvailable != nil {
		merged.MotoMaxAvailable = *patch.MotoMaxAvailable
	}
	if patch.CarAvailable != nil {
		merged.CarAvailable = *patch.CarAvailable
	}
	if patch.CarMaxAvailable != nil {
		merged.CarMaxAvailable = *patch.CarMaxAvailable
	}

	return merged
}
