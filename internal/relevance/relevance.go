// Package relevance decide qué notificaciones son pertinentes para un usuario
// según su horario de clases. La ventana de pertinencia modela "está por salir
// o acaba de salir de su última clase", una aproximación a "probablemente
// sigue en el campus o cerca de él".
package relevance

import (
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

// WindowMinutes es el radio de la ventana de pertinencia alrededor del fin de
// la última clase del día, inclusivo en ambos extremos.
const WindowMinutes = 60

// RelevantAt indica si el instante t cae dentro de la ventana de pertinencia
// del horario: entre los días del horario que coinciden con el día de la
// semana de t se toma la entrada con la hora de fin más tardía (la última
// clase de ese día) y se comprueba t contra [fin-60, fin+60] en minutos.
func RelevantAt(schedule []domain.ScheduleEntry, t time.Time) bool {
	day := domain.WeekdayName(t.Weekday())

	// Fin más tardío entre las entradas del día; los empates los resuelve la
	// primera encontrada, el horario no tiene ningún otro orden garantizado.
	lastEnd := -1
	for _, entry := range schedule {
		if entry.Day != day {
			continue
		}
		end, ok := domain.MinuteOfDay(entry.EndTime)
		if !ok {
			continue
		}
		if end > lastEnd {
			lastEnd = end
		}
	}

	if lastEnd < 0 {
		return false
	}

	minute := t.Hour()*60 + t.Minute()
	return minute >= lastEnd-WindowMinutes && minute <= lastEnd+WindowMinutes
}

// FilterForUser devuelve el subconjunto de notificaciones pertinentes para el
// usuario, preservando el orden de entrada. Los celadores ven todo sin
// filtrar; un usuario sin horario no ve ninguna.
func FilterForUser(user *domain.User, notifications []*domain.Notification) []*domain.Notification {
	if user.UserType == domain.UserTypeCelador {
		return notifications
	}

	if len(user.Schedule) == 0 {
		return []*domain.Notification{}
	}

	relevant := make([]*domain.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if RelevantAt(user.Schedule, notification.CreatedAt) {
			relevant = append(relevant, notification)
		}
	}

	return relevant
}

// EligibleRecipients selecciona los usuarios a los que una notificación
// enviada en el instante now les resulta pertinente. Se usa al enviar el
// correo masivo: la misma ventana que gobierna el historial gobierna quién
// recibe el aviso.
func EligibleRecipients(users []*domain.User, now time.Time) []*domain.User {
	eligible := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if RelevantAt(user.Schedule, now) {
			eligible = append(eligible, user)
		}
	}
	return eligible
}
