package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
	"github.com/parkampus-dev/parkampus/backend/internal/utils"
)

func (h *Handler) CreateParkingLot(w http.ResponseWriter, r *http.Request) {
	var req domain.ParkingLotPatch

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		h.badRequest(w, r, errors.New("Campos requeridos faltantes: name"))
		return
	}

	if err := utils.ValidateParkingLotNumericFields(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// en una creación el estado propuesto se resuelve contra el valor cero:
	// los contadores que no vengan quedan en 0
	lot := domain.ResolveParkingLotPatch(domain.ParkingLot{}, req)

	if err := utils.ValidateParkingLotCapacity(lot); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateParkingLot(&lot); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "parking_lots_name_key":
				h.badRequest(w, r, errors.New("Ya existe un parking lot con este nombre"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Parking lot creado exitosamente", lot)
}

func (h *Handler) GetAllParkingLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.repository.GetAllParkingLots()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Parking lots obtenidos exitosamente", lots)
}

func (h *Handler) GetParkingLot(w http.ResponseWriter, r *http.Request) {
	lot := r.Context().Value(ParkingLotCtx).(*domain.ParkingLot)
	h.successResponse(w, r, "Parking lot obtenido exitosamente", lot)
}

func (h *Handler) UpdateParkingLot(w http.ResponseWriter, r *http.Request) {
	var req domain.ParkingLotPatch

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		h.badRequest(w, r, errors.New("name no puede estar vacío"))
		return
	}

	if err := utils.ValidateParkingLotNumericFields(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	current := r.Context().Value(ParkingLotCtx).(*domain.ParkingLot)

	// el estado propuesto se resuelve contra el registro almacenado: un parche
	// que baja un máximo por debajo del disponible vigente debe rechazarse
	// aunque el disponible no venga en la petición
	merged := domain.ResolveParkingLotPatch(*current, req)

	if err := utils.ValidateParkingLotCapacity(merged); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateParkingLot(&merged); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "parking_lots_name_key":
				h.badRequest(w, r, errors.New("Ya existe otro parking lot con este nombre"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "El parqueadero fue modificado por otra operación, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Parking lot actualizado exitosamente", merged)
}

func (h *Handler) DeleteParkingLot(w http.ResponseWriter, r *http.Request) {
	lot := r.Context().Value(ParkingLotCtx).(*domain.ParkingLot)

	if err := h.repository.DeleteParkingLot(lot.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Parking lot eliminado exitosamente", lot)
}
