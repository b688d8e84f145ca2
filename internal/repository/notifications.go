package repository

import (
	"context"
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
)

func (r *Repository) CreateNotification(notification *domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notifications (sender_id, type, subject, recipients_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	args := []any{notification.SenderID, notification.Type, notification.Subject, notification.RecipientsCount}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notification.ID, &notification.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetAllNotifications devuelve el historial completo ordenado de la más
// reciente a la más antigua; el filtrado por pertinencia ocurre después, en
// memoria, contra el horario del usuario que consulta.
func (r *Repository) GetAllNotifications() ([]*domain.Notification, error) {
	query := `
		SELECT id, sender_id, type, subject, recipients_count, created_at
		FROM notifications
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification := &domain.Notification{}
		dst := []any{&notification.ID, &notification.SenderID, &notification.Type, &notification.Subject, &notification.RecipientsCount, &notification.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) GetNotificationByID(id int64) (*domain.Notification, error) {
	query := `
		SELECT sender_id, type, subject, recipients_count, created_at
		FROM notifications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	notification := &domain.Notification{
		ID: id,
	}

	dst := []any{&notification.SenderID, &notification.Type, &notification.Subject, &notification.RecipientsCount, &notification.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return notification, nil
}

func (r *Repository) DeleteNotification(id int64) error {
	query := `
		DELETE FROM notifications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
