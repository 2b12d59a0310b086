package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Channel prefix for entity change events. Full channel name is
	// eventChannelPrefix + entity name, e.g. "clinic:events:doctor".
	eventChannelPrefix = "clinic:events:"

	// Timeout for individual Redis publish operations
	publishTimeout = 5 * time.Second
)

// Event actions
const (
	EventActionCreated       = "created"
	EventActionUpdated       = "updated"
	EventActionDeleted       = "deleted"
	EventActionStatusChanged = "status_changed"
)

// ChangeEvent is the payload published for every entity mutation.
// Dashboard clients subscribe to the per-entity channels to keep their
// tables live without polling.
type ChangeEvent struct {
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

// EventService publishes entity change events to Redis pub/sub.
// Publishing is best-effort: a failed publish is logged, the mutation that
// triggered it has already committed.
type EventService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewEventService(redisClient *redis.Client, log *logrus.Logger) *EventService {
	return &EventService{
		redisClient: redisClient,
		log:         log,
	}
}

// Publish emits a change event for the given entity. Call after commit.
func (s *EventService) Publish(ctx context.Context, entityName, action, entityID string) {
	event := ChangeEvent{
		Entity:   entityName,
		Action:   action,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warnf("Failed to marshal change event: %+v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	channel := eventChannelPrefix + entityName
	if err := s.redisClient.Publish(pubCtx, channel, payload).Err(); err != nil {
		s.log.Warnf("Failed to publish change event on %s: %+v", channel, err)
	}
}

// Subscribe returns a subscription for one entity's change feed.
// Used by integrations that bridge events to websockets or SSE.
func (s *EventService) Subscribe(ctx context.Context, entityName string) *redis.PubSub {
	return s.redisClient.Subscribe(ctx, eventChannelPrefix+entityName)
}
