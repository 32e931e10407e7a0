package xerosync

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

// SyncEvent is published after a cycle that inserted at least one document,
// so downstream consumers can react without polling the mirror.
type SyncEvent struct {
	Entity        string    `json:"entity"`
	Inserted      int       `json:"inserted"`
	Fetched       int       `json:"fetched"`
	CompletedAt   time.Time `json:"completed_at"`
	CorrelationId string    `json:"correlation_id"`
}

// publishSyncEvent emits one SyncEvent to the configured topic. Publishing is
// best effort; failures are logged and never affect the sync outcome.
func publishSyncEvent(ctx context.Context, logger *logrus.Logger, event SyncEvent) {
	topicID := strings.TrimSpace(os.Getenv("XERO_SYNC_TOPIC"))
	if topicID == "" {
		return
	}

	client, err := config.GetPubSubClient(ctx)
	if err != nil {
		config.LogError(logger, moduleName, "publishSyncEvent", "pubsub client unavailable", event, err)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		config.LogError(logger, moduleName, "publishSyncEvent", "marshal sync event", event, err)
		return
	}

	topic, err := config.CreateTopicIfNotExists(client, topicID)
	if err != nil {
		config.LogError(logger, moduleName, "publishSyncEvent", "resolve topic "+topicID, event, err)
		return
	}
	defer topic.Stop()

	if _, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx); err != nil {
		config.LogError(logger, moduleName, "publishSyncEvent", "publish sync event", event, err)
		return
	}

	logger.WithFields(logrus.Fields{
		"topic":    topicID,
		"entity":   event.Entity,
		"inserted": event.Inserted,
	}).Info("sync event published")
}
