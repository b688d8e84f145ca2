package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

// El horario se persiste como un documento jsonb que se reemplaza íntegro en
// cada actualización.
func scanScheduleJSON(raw []byte, user *domain.User) error {
	user.Schedule = make([]domain.ScheduleEntry, 0)
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, &user.Schedule)
}

func (r *Repository) CreateUser(user *domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	scheduleJSON, err := json.Marshal(user.Schedule)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, user_type, schedule)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{user.FirstName, user.LastName, user.Email, user.PasswordHash, user.UserType, string(scheduleJSON)}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	query := `
		SELECT first_name, last_name, email, password_hash, user_type, schedule, expo_push_token, created_at, updated_at, version
		FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		ID: id,
	}

	var scheduleJSON []byte
	var pushToken sql.NullString

	dst := []any{&user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.UserType, &scheduleJSON, &pushToken, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := scanScheduleJSON(scheduleJSON, user); err != nil {
		return nil, err
	}
	user.ExpoPushToken = pushToken.String

	return user, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, password_hash, user_type, schedule, expo_push_token, created_at, updated_at, version
		FROM users WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	user := &domain.User{
		Email: email,
	}

	var scheduleJSON []byte
	var pushToken sql.NullString

	dst := []any{&user.ID, &user.FirstName, &user.LastName, &user.PasswordHash, &user.UserType, &scheduleJSON, &pushToken, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	if err := scanScheduleJSON(scheduleJSON, user); err != nil {
		return nil, err
	}
	user.ExpoPushToken = pushToken.String

	return user, nil
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, user_type, schedule, expo_push_token, created_at, updated_at, version
		FROM users
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}

		var scheduleJSON []byte
		var pushToken sql.NullString

		dst := []any{&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.UserType, &scheduleJSON, &pushToken, &user.CreatedAt, &user.UpdatedAt, &user.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := scanScheduleJSON(scheduleJSON, user); err != nil {
			return nil, err
		}
		user.ExpoPushToken = pushToken.String

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	query := `
		UPDATE users
		SET
			first_name = $1,
			last_name = $2,
			password_hash = $3,
			schedule = $4::jsonb,
			expo_push_token = NULLIF($5, ''),
			updated_at = now(),
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING email, user_type, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	scheduleJSON, err := json.Marshal(user.Schedule)
	if err != nil {
		return err
	}

	args := []any{user.FirstName, user.LastName, user.PasswordHash, string(scheduleJSON), user.ExpoPushToken, user.ID, user.Version}
	dst := []any{&user.Email, &user.UserType, &user.CreatedAt, &user.UpdatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
