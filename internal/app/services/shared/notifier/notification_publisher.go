package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationMessage is the payload handed to the delivery pipeline. IDs are
// hex strings so consumers do not need the Mongo driver to decode them.
type NotificationMessage struct {
	ID            string            `json:"id"`
	RecipientID   string            `json:"recipient_id"`
	AppointmentID string            `json:"appointment_id"`
	Type          string            `json:"type"`
	Title         bilingual.Message `json:"title"`
	Message       bilingual.Message `json:"message"`
}

// Service publishes committed notification records to the notification queue.
// It declares the queue durably and waits for a publisher confirm on every
// message.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.NotificationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// PublishNotifications publishes one message per notification. The records are
// already persisted, so a failed publish loses delivery but never data.
func (s *Service) PublishNotifications(ctx context.Context, notifications []models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("notifier.PublishNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.Int(constvars.LoggingMessageCountKey, len(notifications)),
	)

	for _, notification := range notifications {
		payload := NotificationMessage{
			ID:            notification.ID.Hex(),
			RecipientID:   notification.RecipientID.Hex(),
			AppointmentID: notification.AppointmentID.Hex(),
			Type:          string(notification.Type),
			Title:         notification.Title,
			Message:       notification.Message,
		}
		if err := s.publish(ctx, payload); err != nil {
			s.log.Error("notifier.PublishNotifications error publishing message",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQueueNameKey, s.queueName),
				zap.Error(err),
			)
			return err
		}
	}

	s.log.Info("notifier.PublishNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMessageCountKey, len(notifications)),
	)
	return nil
}

func (s *Service) publish(ctx context.Context, payload NotificationMessage) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return nil
}
