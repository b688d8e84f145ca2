package domain

import (
	"regexp"
	"strconv"
	"time"
)

// ScheduleEntry es un bloque de clase semanal recurrente. El horario completo
// de un usuario se reemplaza siempre de forma íntegra, nunca por entrada.
type ScheduleEntry struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// weekdayNames está indexado por time.Weekday (0 = domingo), para que el mapeo
// de fecha a día de la semana no dependa de ningún locale.
var weekdayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)]
}

func IsValidDay(day string) bool {
	for _, name := range weekdayNames {
		if name == day {
			return true
		}
	}
	return false
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// MinuteOfDay convierte una hora "HH:MM" en minutos desde medianoche [0, 1439].
// Devuelve false si el formato no es estrictamente HH:MM de 24 horas.
func MinuteOfDay(value string) (int, bool) {
	m := timeOfDayPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return hours*60 + minutes, true
}
