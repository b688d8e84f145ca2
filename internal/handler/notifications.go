package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
	"github.com/parkampus-dev/parkampus/backend/internal/relevance"
	"github.com/parkampus-dev/parkampus/backend/internal/utils"
)

func (h *Handler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID        int64  `json:"user_id" validate:"required"`
		ExpoPushToken string `json:"expo_push_token" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// cada usuario registra su propio token; el celador puede registrar el de otros
	sub := r.Context().Value(SubCtxKey).(string)
	userType := domain.UserType(r.Context().Value(UserTypeCtxKey).(string))

	if sub != strconv.FormatInt(req.UserID, 10) && userType != domain.UserTypeCelador {
		h.errorResponse(w, r, "No tienes permiso para registrar el token de otro usuario")
		return
	}

	if !utils.IsValidExpoPushToken(req.ExpoPushToken) {
		h.badRequest(w, r, errors.New("Token de Expo Push inválido"))
		return
	}

	user, err := h.repository.GetUserByID(req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Usuario no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	user.ExpoPushToken = req.ExpoPushToken
	if err := h.repository.UpdateUser(user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "No se pudo registrar el token, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Token de notificaciones registrado exitosamente", user)
}

func (h *Handler) SendMassEmail(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Type string `json:"type" validate:"required,oneof=CIERRE_NOCTURNO LIBERACION_HORA_PICO CIERRE_SEGURIDAD EVENTO_INSTITUCIONAL MANTENIMIENTO_EMERGENCIA"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	notificationType := domain.NotificationType(req.Type)

	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// la misma ventana que gobierna el historial decide quién recibe el aviso:
	// usuarios a los que el instante actual les cae cerca del fin de su última
	// clase de hoy
	recipients := relevance.EligibleRecipients(users, time.Now())

	// el registro se persiste antes de publicar: si una publicación falla a
	// mitad del lote, el historial conserva el aviso y su conteo de destinatarios
	notification := &domain.Notification{
		SenderID:        myInfo.ID,
		Type:            notificationType,
		Subject:         domain.SubjectForType(notificationType),
		RecipientsCount: int32(len(recipients)),
	}

	if err := h.repository.CreateNotification(notification); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, recipient := range recipients {
		mailMessage := domain.MailMessage{
			Type: "mass_notification",
			To:   recipient.Email,
			Data: domain.MassNotificationMailData{
				FirstName:        recipient.FirstName,
				NotificationType: notificationType,
			},
		}

		if err := h.publishMailMessage(mailMessage); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "Notificación enviada exitosamente", map[string]any{
		"notification":  notification,
		"total_targets": len(recipients),
	})
}

func (h *Handler) GetNotificationHistory(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notifications, err := h.repository.GetAllNotifications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	relevant := relevance.FilterForUser(myInfo, notifications)

	h.successResponse(w, r, "Notificaciones obtenidas exitosamente", map[string]any{
		"count":         len(relevant),
		"notifications": relevant,
	})
}

func (h *Handler) GetNotification(w http.ResponseWriter, r *http.Request) {
	notification := r.Context().Value(NotificationCtx).(*domain.Notification)
	h.successResponse(w, r, "Notificación obtenida exitosamente", notification)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	notification := r.Context().Value(NotificationCtx).(*domain.Notification)

	if err := h.repository.DeleteNotification(notification.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Notificación eliminada exitosamente", notification)
}
