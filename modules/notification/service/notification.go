package service

import (
	"context"

	"nachna/shared/common/logger"

	"go.uber.org/zap"
)

type NotificationService interface {
	SendPushNotification(ctx context.Context, userID string, title string, payload map[string]any) error
}

type notificationService struct {
}

func NewNotificationService() NotificationService {
	return &notificationService{}
}

// SendPushNotification ตอนนี้แค่ log ไว้ก่อน รอต่อกับ APNs/FCM จริง
func (s *notificationService) SendPushNotification(ctx context.Context, userID string, title string, payload map[string]any) error {
	logger.FromContext(ctx).Info("sending push notification",
		zap.String("user_id", userID),
		zap.String("title", title),
		zap.Any("payload", payload))
	return nil
}
