package relevance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

// lunes recorta una hora sobre el lunes 2 de junio de 2025.
func lunes(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestRelevantAt(t *testing.T) {
	schedule := []domain.ScheduleEntry{
		{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
	}

	tests := []struct {
		name     string
		at       time.Time
		relevant bool
	}{
		{"dentro de la ventana después del fin", lunes(10, 20), true},
		{"durante la clase pero fuera de la ventana", lunes(8, 30), false},
		{"después del cierre de la ventana", lunes(11, 5), false},
		{"antes de la apertura de la ventana", lunes(8, 59), false},
		{"límite inferior inclusivo", lunes(9, 0), true},
		{"límite superior inclusivo", lunes(11, 0), true},
		{"otro día de la semana", time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.relevant, RelevantAt(schedule, tt.at))
		})
	}

	t.Run("horario vacío nunca es pertinente", func(t *testing.T) {
		assert.False(t, RelevantAt(nil, lunes(10, 0)))
	})

	t.Run("con varias clases el mismo día manda la última", func(t *testing.T) {
		schedule := []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
			{Day: "Lunes", StartTime: "14:00", EndTime: "16:00"},
		}

		// La ventana de la clase de la mañana deja de aplicar: solo cuenta
		// el fin de la última clase del día.
		assert.False(t, RelevantAt(schedule, lunes(10, 30)))
		assert.True(t, RelevantAt(schedule, lunes(15, 30)))
		assert.True(t, RelevantAt(schedule, lunes(17, 0)))
		assert.False(t, RelevantAt(schedule, lunes(17, 1)))
	})

	t.Run("el orden de las entradas no altera el resultado", func(t *testing.T) {
		a := []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
			{Day: "Lunes", StartTime: "14:00", EndTime: "16:00"},
		}
		b := []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "14:00", EndTime: "16:00"},
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
		}

		for _, at := range []time.Time{lunes(10, 30), lunes(15, 30), lunes(17, 0)} {
			assert.Equal(t, RelevantAt(a, at), RelevantAt(b, at))
		}
	})
}

func TestFilterForUser(t *testing.T) {
	notifications := []*domain.Notification{
		{ID: 1, Type: domain.NotificationCierreNocturno, CreatedAt: lunes(10, 20)},
		{ID: 2, Type: domain.NotificationLiberacionHoraPico, CreatedAt: lunes(8, 30)},
		{ID: 3, Type: domain.NotificationEventoInstitucional, CreatedAt: lunes(11, 0)},
	}

	estudiante := &domain.User{
		UserType: domain.UserTypeEstudiante,
		Schedule: []domain.ScheduleEntry{
			{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"},
		},
	}

	t.Run("filtra por ventana preservando el orden", func(t *testing.T) {
		relevant := FilterForUser(estudiante, notifications)
		require.Len(t, relevant, 2)
		assert.Equal(t, int64(1), relevant[0].ID)
		assert.Equal(t, int64(3), relevant[1].ID)
	})

	t.Run("el celador ve todo sin filtrar", func(t *testing.T) {
		celador := &domain.User{UserType: domain.UserTypeCelador}
		assert.Equal(t, notifications, FilterForUser(celador, notifications))
	})

	t.Run("usuario sin horario no ve ninguna", func(t *testing.T) {
		empleado := &domain.User{UserType: domain.UserTypeEmpleado}
		relevant := FilterForUser(empleado, notifications)
		require.NotNil(t, relevant)
		assert.Empty(t, relevant)
	})

	t.Run("filtrar dos veces da lo mismo", func(t *testing.T) {
		once := FilterForUser(estudiante, notifications)
		twice := FilterForUser(estudiante, once)
		assert.Equal(t, once, twice)
	})
}

func TestEligibleRecipients(t *testing.T) {
	enVentana := &domain.User{
		ID:       1,
		UserType: domain.UserTypeEstudiante,
		Schedule: []domain.ScheduleEntry{{Day: "Lunes", StartTime: "08:00", EndTime: "10:00"}},
	}
	fueraDeVentana := &domain.User{
		ID:       2,
		UserType: domain.UserTypeEmpleado,
		Schedule: []domain.ScheduleEntry{{Day: "Lunes", StartTime: "14:00", EndTime: "16:00"}},
	}
	sinHorario := &domain.User{ID: 3, UserType: domain.UserTypeEstudiante}

	eligible := EligibleRecipients([]*domain.User{enVentana, fueraDeVentana, sinHorario}, lunes(10, 30))
	require.Len(t, eligible, 1)
	assert.Equal(t, int64(1), eligible[0].ID)
}
