// internals/features/users/notifications/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	nModel "sekolahku_backend/internals/features/users/notifications/model"
)

/* ===================== REQUESTS ===================== */

type CreateNotificationRequest struct {
	UserID  uuid.UUID         `json:"user_id" validate:"required"`
	Message string            `json:"message" validate:"required,min=1,max=500"`
	Data    datatypes.JSONMap `json:"data" validate:"omitempty"`
}

func (r *CreateNotificationRequest) ToModel() *nModel.NotificationModel {
	return &nModel.NotificationModel{
		UserID:  r.UserID,
		Message: r.Message,
		Data:    r.Data,
	}
}

// PUT = full replace
type UpdateNotificationRequest struct {
	UserID  uuid.UUID         `json:"user_id" validate:"required"`
	Message string            `json:"message" validate:"required,min=1,max=500"`
	Data    datatypes.JSONMap `json:"data" validate:"omitempty"`
}

func (r *UpdateNotificationRequest) ApplyToModel(m *nModel.NotificationModel) {
	m.UserID = r.UserID
	m.Message = r.Message
	m.Data = r.Data
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	NotificationsID uuid.UUID         `json:"notifications_id"`
	UserID          uuid.UUID         `json:"user_id"`
	Message         string            `json:"message"`
	Data            datatypes.JSONMap `json:"data,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

func NewNotificationResponse(m *nModel.NotificationModel) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		NotificationsID: m.NotificationsID,
		UserID:          m.UserID,
		Message:         m.Message,
		Data:            m.Data,
		CreatedAt:       m.CreatedAt,
	}
}
