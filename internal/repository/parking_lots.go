package repository

import (
	"context"
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

func (r *Repository) CreateParkingLot(lot *domain.ParkingLot) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO parking_lots (name, moto_available, moto_max_available, car_available, car_max_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{lot.Name, lot.MotoAvailable, lot.MotoMaxAvailable, lot.CarAvailable, lot.CarMaxAvailable}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lot.ID, &lot.CreatedAt, &lot.UpdatedAt, &lot.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetParkingLotByID(id int64) (*domain.ParkingLot, error) {
	query := `
		SELECT name, moto_available, moto_max_available, car_available, car_max_available, created_at, updated_at, version
		FROM parking_lots WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	lot := &domain.ParkingLot{
		ID: id,
	}

	dst := []any{&lot.Name, &lot.MotoAvailable, &lot.MotoMaxAvailable, &lot.CarAvailable, &lot.CarMaxAvailable, &lot.CreatedAt, &lot.UpdatedAt, &lot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return lot, nil
}

func (r *Repository) GetAllParkingLots() ([]*domain.ParkingLot, error) {
	query := `
		SELECT id, name, moto_available, moto_max_available, car_available, car_max_available, created_at, updated_at, version
		FROM parking_lots
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lots := make([]*domain.ParkingLot, 0)
	for rows.Next() {
		lot := &domain.ParkingLot{}
		dst := []any{&lot.ID, &lot.Name, &lot.MotoAvailable, &lot.MotoMaxAvailable, &lot.CarAvailable, &lot.CarMaxAvailable, &lot.CreatedAt, &lot.UpdatedAt, &lot.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lots, nil
}

// UpdateParkingLot usa la columna version como verificación optimista: dos
// actualizaciones concurrentes que validaron contra el mismo estado no pueden
// escribirse ambas, la segunda obtiene sql.ErrNoRows y debe reintentar.
func (r *Repository) UpdateParkingLot(lot *domain.ParkingLot) error {
	query := `
		UPDATE parking_lots
		SET
			name = $1,
			moto_available = $2,
			moto_max_available = $3,
			car_available = $4,
			car_max_available = $5,
			updated_at = now(),
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{lot.Name, lot.MotoAvailable, lot.MotoMaxAvailable, lot.CarAvailable, lot.CarMaxAvailable, lot.ID, lot.Version}
	dst := []any{&lot.CreatedAt, &lot.UpdatedAt, &lot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteParkingLot(id int64) error {
	query := `
		DELETE FROM parking_lots WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
