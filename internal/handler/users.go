package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
	"github.com/parkampus-dev/parkampus/backend/internal/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string                 `json:"first_name" validate:"required"`
		LastName  string                 `json:"last_name" validate:"required"`
		Email     string                 `json:"email" validate:"required,email"`
		Password  string                 `json:"password" validate:"required"`
		UserType  string                 `json:"user_type" validate:"required,oneof=estudiante celador empleado"`
		Schedule  []domain.ScheduleEntry `json:"schedule"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// el horario es opcional, pero si viene debe ser válido
	if err := utils.ValidateSchedule(req.Schedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// comprobar el email antes de insertar; la restricción users_email_key
	// queda como respaldo para la carrera entre comprobación e inserción
	exists, err := h.repository.CheckEmailIfExists(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.badRequest(w, r, errors.New("Ya existe un usuario con este email"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		UserType:     domain.UserType(req.UserType),
		Schedule:     req.Schedule,
	}
	if user.Schedule == nil {
		user.Schedule = []domain.ScheduleEntry{}
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_email_key":
				h.badRequest(w, r, errors.New("Ya existe un usuario con este email"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "welcome",
		To:   user.Email,
		Data: domain.WelcomeMailData{
			FirstName: user.FirstName,
			Email:     user.Email,
		},
	}

	if err := h.publishMailMessage(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Usuario creado exitosamente", user)
}

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Usuarios obtenidos exitosamente", users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)
	h.successResponse(w, r, "Usuario obtenido exitosamente", user)
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	h.successResponse(w, r, "Perfil obtenido exitosamente", myInfo)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName *string                 `json:"first_name"`
		LastName  *string                 `json:"last_name"`
		Schedule  *[]domain.ScheduleEntry `json:"schedule"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Schedule != nil {
		// el horario se reemplaza completo y se vuelve a validar entero
		if err := utils.ValidateSchedule(*req.Schedule); err != nil {
			h.badRequest(w, r, err)
			return
		}
		user.Schedule = *req.Schedule
	}

	if err := h.repository.UpdateUser(user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "No se pudo actualizar el usuario, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Usuario actualizado exitosamente", user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if err := h.repository.DeleteUser(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Usuario eliminado exitosamente", nil)
}
