// Package outboxrepo persists staged domain events for the transactional
// outbox. Messages are written in the same transaction as the aggregate
// change and relayed to the broker by a background job.
package outboxrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ordering/internal/core/ports"
)

// OutboxMessageDTO represents a row of the outbox table. The autoincrement
// primary key gives relay order.
type OutboxMessageDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"uniqueIndex"`
	EventType string
	Key       string
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stages a message inside the current transaction. The storage assigned
// identifier is written back to the message.
func (r *GormOutboxRepository) Add(ctx context.Context, message *ports.OutboxMessage) error {
	dto := OutboxMessageDTO{
		EventID:   message.EventID,
		EventType: message.EventType,
		Key:       message.Key,
		Payload:   message.Payload,
		CreatedAt: message.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	message.ID = dto.ID
	return nil
}

// FetchPending returns up to limit unsent messages in insertion order.
func (r *GormOutboxRepository) FetchPending(
	ctx context.Context,
	limit int,
) ([]*ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, &ports.OutboxMessage{
			ID:        dto.ID,
			EventID:   dto.EventID,
			EventType: dto.EventType,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
			SentAt:    dto.SentAt,
		})
	}

	return messages, nil
}

// MarkSent records the publication time of a message.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id = ?", id).
		Update("sent_at", sentAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
