package domain

import (
	"time"
)

type NotificationType string

const (
	NotificationCierreNocturno          NotificationType = "CIERRE_NOCTURNO"
	NotificationLiberacionHoraPico      NotificationType = "LIBERACION_HORA_PICO"
	NotificationCierreSeguridad         NotificationType = "CIERRE_SEGURIDAD"
	NotificationEventoInstitucional     NotificationType = "EVENTO_INSTITUCIONAL"
	NotificationMantenimientoEmergencia NotificationType = "MANTENIMIENTO_EMERGENCIA"
)

type Notification struct {
	ID              int64            `json:"id"`
	SenderID        int64            `json:"sender_id"`
	Type            NotificationType `json:"type"`
	Subject         string           `json:"subject"`
	RecipientsCount int32            `json:"recipients_count"`
	CreatedAt       time.Time        `json:"created_at"`
}

func SubjectForType(t NotificationType) string {
	switch t {
	case NotificationCierreNocturno:
		return "Aviso de Cierre Nocturno - Parkampus"
	case NotificationLiberacionHoraPico:
		return "Solicitud de Liberación de Espacios - Hora Pico"
	case NotificationCierreSeguridad:
		return "ALERTA DE SEGURIDAD - Evacuación Preventiva"
	case NotificationEventoInstitucional:
		return "Aviso de Evento Institucional - Restricciones"
	case NotificationMantenimientoEmergencia:
		return "Mantenimiento de Emergencia en Parqueaderos"
	default:
		return "Notificación Importante de Parkampus"
	}
}
