package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

func TestValidateSchedule(t *testing.T) {
	t.Run("horario vacío es válido", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule(nil))
		assert.NoError(t, ValidateSchedule([]domain.ScheduleEntry{}))
	})

	t.Run("horario completo válido", func(t *testing.T) {
		schedule := []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
			{Day: "Miércoles", StartTime: "14:00", EndTime: "16:00"},
		}
		assert.NoError(t, ValidateSchedule(schedule))
	})

	t.Run("campo faltante reporta índice y campo", func(t *testing.T) {
		schedule := []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
			{Day: "Martes", StartTime: "", EndTime: "10:00"},
		}

		err := ValidateSchedule(schedule)
		var missingErr *MissingFieldError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, 1, missingErr.Index)
		assert.Equal(t, "start_time", missingErr.Field)
	})

	t.Run("día inválido", func(t *testing.T) {
		schedule := []domain.ScheduleEntry{
			{Day: "Monday", StartTime: "08:00", EndTime: "10:00"},
		}

		err := ValidateSchedule(schedule)
		var dayErr *InvalidDayError
		require.ErrorAs(t, err, &dayErr)
		assert.Equal(t, 0, dayErr.Index)
		assert.Equal(t, "Monday", dayErr.Value)
	})

	t.Run("formato de hora inválido", func(t *testing.T) {
		tests := []struct {
			start string
			end   string
			field string
		}{
			{"8:00", "10:00", "start_time"},
			{"08:00", "25:00", "end_time"},
			{"08:00", "10:60", "end_time"},
		}

		for _, tt := range tests {
			err := ValidateSchedule([]domain.ScheduleEntry{
				{Day: "Lunes", StartTime: tt.start, EndTime: tt.end},
			})

			var formatErr *InvalidTimeFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.field, formatErr.Field)
		}
	})

	t.Run("inicio igual a fin se rechaza", func(t *testing.T) {
		err := ValidateSchedule([]domain.ScheduleEntry{
			{Day: "Viernes", StartTime: "10:00", EndTime: "10:00"},
		})

		var rangeErr *InvalidTimeRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "Viernes", rangeErr.Day)
	})

	t.Run("inicio posterior al fin se rechaza", func(t *testing.T) {
		err := ValidateSchedule([]domain.ScheduleEntry{
			{Day: "Viernes", StartTime: "12:00", EndTime: "10:00"},
		})

		var rangeErr *InvalidTimeRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("un minuto de duración es válido", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule([]domain.ScheduleEntry{
			{Day: "Jueves", StartTime: "08:00", EndTime: "08:01"},
		}))
	})

	t.Run("entradas solapadas del mismo día se toleran", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule([]domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
			{Day: "Lunes", StartTime: "09:00", EndTime: "11:00"},
		}))
	})
}

func TestValidateParkingLotNumericFields(t *testing.T) {
	positive := int32(10)
	negative := int32(-1)

	t.Run("parche sin campos es válido", func(t *testing.T) {
		assert.NoError(t, ValidateParkingLotNumericFields(domain.ParkingLotPatch{}))
	})

	t.Run("cero es válido", func(t *testing.T) {
		zero := int32(0)
		assert.NoError(t, ValidateParkingLotNumericFields(domain.ParkingLotPatch{
			MotoAvailable: &zero,
			CarAvailable:  &zero,
		}))
	})

	t.Run("negativo reporta el primer campo en orden fijo", func(t *testing.T) {
		err := ValidateParkingLotNumericFields(domain.ParkingLotPatch{
			MotoAvailable:   &negative,
			CarMaxAvailable: &negative,
		})

		var numErr *NumericFieldError
		require.ErrorAs(t, err, &numErr)
		assert.Equal(t, "moto_available", numErr.Field)
	})

	t.Run("negativo en un solo campo", func(t *testing.T) {
		err := ValidateParkingLotNumericFields(domain.ParkingLotPatch{
			MotoAvailable:   &positive,
			CarMaxAvailable: &negative,
		})

		var numErr *NumericFieldError
		require.ErrorAs(t, err, &numErr)
		assert.Equal(t, "car_max_available", numErr.Field)
	})
}

func TestValidateParkingLotCapacity(t *testing.T) {
	t.Run("disponible igual al máximo es válido", func(t *testing.T) {
		assert.NoError(t, ValidateParkingLotCapacity(domain.ParkingLot{
			MotoAvailable:    20,
			MotoMaxAvailable: 20,
			CarAvailable:     15,
			CarMaxAvailable:  15,
		}))
	})

	t.Run("las violaciones de moto y carro se acumulan", func(t *testing.T) {
		err := ValidateParkingLotCapacity(domain.ParkingLot{
			MotoAvailable:    25,
			MotoMaxAvailable: 20,
			CarAvailable:     30,
			CarMaxAvailable:  15,
		})

		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
		require.Len(t, capErr.Violations, 2)
		assert.Contains(t, capErr.Violations[0], "moto_available")
		assert.Contains(t, capErr.Violations[1], "car_available")
	})

	t.Run("reducir el máximo por debajo del disponible almacenado falla", func(t *testing.T) {
		// Un parqueadero con 10 motos disponibles sobre 20 de cupo no puede
		// bajar su cupo máximo a 5 sin liberar primero disponibilidad.
		current := domain.ParkingLot{MotoAvailable: 10, MotoMaxAvailable: 20}
		newMax := int32(5)
		merged := domain.ResolveParkingLotPatch(current, domain.ParkingLotPatch{MotoMaxAvailable: &newMax})

		err := ValidateParkingLotCapacity(merged)
		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
		require.Len(t, capErr.Violations, 1)
		assert.Contains(t, capErr.Violations[0], "moto_available (10)")
	})

	t.Run("en creación el estado base es el valor cero", func(t *testing.T) {
		available := int32(10)
		merged := domain.ResolveParkingLotPatch(domain.ParkingLot{}, domain.ParkingLotPatch{MotoAvailable: &available})

		err := ValidateParkingLotCapacity(merged)
		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
	})
}

func TestIsValidExpoPushToken(t *testing.T) {
	assert.True(t, IsValidExpoPushToken("ExponentPushToken[abc123XYZ_-]"))
	assert.False(t, IsValidExpoPushToken("ExponentPushToken[]"))
	assert.False(t, IsValidExpoPushToken("ExpoPushToken[abc]"))
	assert.False(t, IsValidExpoPushToken("abc"))
	assert.False(t, IsValidExpoPushToken(""))
}
