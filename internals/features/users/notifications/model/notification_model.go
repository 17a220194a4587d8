// internals/features/users/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationModel struct {
	// PK
	NotificationsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notifications_id" json:"notifications_id"`

	// Penerima
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`

	// Isi
	Message string `gorm:"type:varchar(500);not null;column:message" json:"message"`

	// Payload terstruktur opsional (mis. deep-link, ref entitas)
	Data datatypes.JSONMap `gorm:"type:jsonb;column:data" json:"data,omitempty"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
