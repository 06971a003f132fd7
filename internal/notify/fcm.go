// Package notify delivers push alerts through Firebase Cloud Messaging.
package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Message is one push notification.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Pusher sends a message to device tokens and reports how many got it.
type Pusher interface {
	Push(ctx context.Context, tokens []string, msg Message) (sent int, err error)
	Enabled() bool
}

// sender is the slice of *messaging.Client we use.
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FCM struct {
	client sender
	logger *zap.Logger
}

// NewFCM connects to Firebase with a service-account file. An empty path
// returns a disabled pusher.
func NewFCM(ctx context.Context, credentialsFile string, logger *zap.Logger) (*FCM, error) {
	logger = logger.Named("fcm")
	if credentialsFile == "" {
		logger.Warn("FIREBASE_CREDENTIALS not set, push alerts disabled")
		return &FCM{logger: logger}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}

	logger.Info("firebase cloud messaging ready")
	return &FCM{client: client, logger: logger}, nil
}

func (f *FCM) Enabled() bool { return f.client != nil }

// Push sends msg to each token in turn. A failing token is logged and
// skipped; err is only set when no token could be reached at all.
func (f *FCM) Push(ctx context.Context, tokens []string, msg Message) (int, error) {
	if !f.Enabled() {
		return 0, fmt.Errorf("push notifications are not configured")
	}

	sent := 0
	var lastErr error
	for _, token := range tokens {
		if token == "" {
			continue
		}
		_, err := f.client.Send(ctx, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			f.logger.Warn("push failed", zap.Error(err))
			lastErr = err
			continue
		}
		sent++
	}

	if sent == 0 && lastErr != nil {
		return 0, lastErr
	}
	return sent, nil
}
