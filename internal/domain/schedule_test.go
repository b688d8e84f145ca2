package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Domingo", WeekdayName(time.Sunday))
	assert.Equal(t, "Lunes", WeekdayName(time.Monday))
	assert.Equal(t, "Miércoles", WeekdayName(time.Wednesday))
	assert.Equal(t, "Sábado", WeekdayName(time.Saturday))
}

func TestIsValidDay(t *testing.T) {
	for _, day := range []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"} {
		assert.True(t, IsValidDay(day), day)
	}

	assert.False(t, IsValidDay("lunes"))
	assert.False(t, IsValidDay("Monday"))
	assert.False(t, IsValidDay(""))
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"08:30", 510, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"8:30", 0, false},
		{"08:60", 0, false},
		{"08-30", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		minutes, ok := MinuteOfDay(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.minutes, minutes, tt.value)
	}
}

func TestResolveParkingLotPatch(t *testing.T) {
	current := ParkingLot{
		Name:             "Bloque A",
		MotoAvailable:    10,
		MotoMaxAvailable: 20,
		CarAvailable:     5,
		CarMaxAvailable:  15,
	}

	t.Run("parche vacío conserva el estado actual", func(t *testing.T) {
		merged := ResolveParkingLotPatch(current, ParkingLotPatch{})
		assert.Equal(t, current, merged)
	})

	t.Run("los campos presentes pisan el estado actual", func(t *testing.T) {
		name := "Bloque B"
		motoMax := int32(30)
		merged := ResolveParkingLotPatch(current, ParkingLotPatch{
			Name:             &name,
			MotoMaxAvailable: &motoMax,
		})

		assert.Equal(t, "Bloque B", merged.Name)
		assert.Equal(t, int32(30), merged.MotoMaxAvailable)
		assert.Equal(t, int32(10), merged.MotoAvailable)
		assert.Equal(t, int32(5), merged.CarAvailable)
		assert.Equal(t, int32(15), merged.CarMaxAvailable)
	})

	t.Run("el cero explícito es distinto del campo ausente", func(t *testing.T) {
		zero := int32(0)
		merged := ResolveParkingLotPatch(current, ParkingLotPatch{CarAvailable: &zero})
		assert.Equal(t, int32(0), merged.CarAvailable)
	})
}
