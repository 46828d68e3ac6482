package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/eventapp/internal/events"
)

// notify publishes an activity event. Delivery failures are logged and
// never reach the caller.
func notify(ctx context.Context, pub events.Publisher, logger *zap.Logger, typ, uid, subject string) {
	e := events.Event{Type: typ, UID: uid, Subject: subject, At: time.Now().UTC()}
	if err := pub.Publish(ctx, e); err != nil {
		logger.Warn("Failed to publish activity event",
			zap.String("type", typ),
			zap.String("uid", uid),
			zap.Error(err),
		)
	}
}
