package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

// MissingFieldError indica que a una entrada del horario le falta un campo
// obligatorio.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entrada %d del horario: falta el campo requerido %q", e.Index, e.Field)
}

// InvalidDayError indica que el día de una entrada no es uno de los siete días
// de la semana en español.
type InvalidDayError struct {
	Index int
	Value string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("entrada %d del horario: día inválido %q, debe ser Lunes, Martes, Miércoles, Jueves, Viernes, Sábado o Domingo", e.Index, e.Value)
}

// InvalidTimeFormatError indica que una hora no cumple el formato HH:MM de 24
// horas.
type InvalidTimeFormatError struct {
	Index int
	Field string
	Value string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("entrada %d del horario: %s con formato inválido %q, debe ser HH:MM", e.Index, e.Field, e.Value)
}

// InvalidTimeRangeError indica que la hora de inicio de una entrada no es
// estrictamente anterior a la de fin.
type InvalidTimeRangeError struct {
	Index int
	Day   string
}

func (e *InvalidTimeRangeError) Error() string {
	return fmt.Sprintf("entrada %d del horario (%s): la hora de inicio debe ser anterior a la hora de fin", e.Index, e.Day)
}

// ValidateSchedule valida un horario semanal completo. Para cada entrada, y en
// este orden, comprueba campos presentes, día válido, formato de horas y rango
// estricto inicio < fin, reportando la primera violación encontrada con el
// índice de la entrada. Un horario vacío es válido (sin clases). Las entradas
// de un mismo día pueden solaparse entre sí: el comportamiento del sistema
// nunca las ha rechazado y cambiarlo es una decisión de producto.
func ValidateSchedule(schedule []domain.ScheduleEntry) error {
	for i, entry := range schedule {
		switch {
		case strings.TrimSpace(entry.Day) == "":
			return &MissingFieldError{Index: i, Field: "day"}
		case strings.TrimSpace(entry.StartTime) == "":
			return &MissingFieldError{Index: i, Field: "start_time"}
		case strings.TrimSpace(entry.EndTime) == "":
			return &MissingFieldError{Index: i, Field: "end_time"}
		}

		if !domain.IsValidDay(entry.Day) {
			return &InvalidDayError{Index: i, Value: entry.Day}
		}

		startMinutes, ok := domain.MinuteOfDay(entry.StartTime)
		if !ok {
			return &InvalidTimeFormatError{Index: i, Field: "start_time", Value: entry.StartTime}
		}
		endMinutes, ok := domain.MinuteOfDay(entry.EndTime)
		if !ok {
			return &InvalidTimeFormatError{Index: i, Field: "end_time", Value: entry.EndTime}
		}

		if startMinutes >= endMinutes {
			return &InvalidTimeRangeError{Index: i, Day: entry.Day}
		}
	}

	return nil
}

// NumericFieldError indica que un contador de cupos es negativo.
type NumericFieldError struct {
	Field string
}

func (e *NumericFieldError) Error() string {
	return fmt.Sprintf("%s debe ser un número mayor o igual a 0", e.Field)
}

// ValidateParkingLotNumericFields comprueba que los contadores presentes en el
// parche sean no negativos, en el orden fijo de los campos.
func ValidateParkingLotNumericFields(patch domain.ParkingLotPatch) error {
	fields := []struct {
		name  string
		value *int32
	}{
		{"moto_available", patch.MotoAvailable},
		{"moto_max_available", patch.MotoMaxAvailable},
		{"car_available", patch.CarAvailable},
		{"car_max_available", patch.CarMaxAvailable},
	}

	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return &NumericFieldError{Field: f.name}
		}
	}

	return nil
}

// CapacityError agrupa las violaciones del invariante de capacidad. Las
// violaciones de motos y carros se comprueban de forma independiente y se
// acumulan, sin cortar en la primera.
type CapacityError struct {
	Violations []string
}

func (e *CapacityError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// ValidateParkingLotCapacity valida el invariante de capacidad sobre el estado
// propuesto ya resuelto: los cupos disponibles nunca superan su máximo. El
// llamador debe construir el estado con ResolveParkingLotPatch, contra el
// registro almacenado en actualizaciones y contra el valor cero en creaciones.
func ValidateParkingLotCapacity(lot domain.ParkingLot) error {
	violations := []string{}

	if lot.MotoAvailable > lot.MotoMaxAvailable {
		violations = append(violations, fmt.Sprintf("moto_available (%d) no puede superar moto_max_available (%d)", lot.MotoAvailable, lot.MotoMaxAvailable))
	}
	if lot.CarAvailable > lot.CarMaxAvailable {
		violations = append(violations, fmt.Sprintf("car_available (%d) no puede superar car_max_available (%d)", lot.CarAvailable, lot.CarMaxAvailable))
	}

	if len(violations) > 0 {
		return &CapacityError{Violations: violations}
	}

	return nil
}

var expoPushTokenPattern = regexp.MustCompile(`^ExponentPushToken\[[A-Za-z0-9_-]+\]$`)

func IsValidExpoPushToken(token string) bool {
	return expoPushTokenPattern.MatchString(token)
}
