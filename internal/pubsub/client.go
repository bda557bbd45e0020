package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

func New(projectID string) PubSubClient {
	ctx := context.Background()
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	teardown := func() {
		pubSubC.Close()
	}

	return &client{
		client:   pubSubC,
		teardown: teardown,
	}
}

func (c *client) SendMessage(topic EventType, data any) error {
	ctx := context.Background()
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{"event": string(topic)},
	}
	result := c.client.Topic(string(topic)).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Info("SendMessage", "topic", topic, "serverID", serverID)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return Unmarshal(data, returnValue)
}

func (c *client) Close() {
	c.teardown()
}

// Unmarshal decodes a MessagePack payload into returnValue.
func Unmarshal(data []byte, returnValue any) error {
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}

// DecodePush extracts the raw message payload from a push request body.
func DecodePush(body []byte) ([]byte, error) {
	var req PushRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid push request: %w", err)
	}
	if req.Message.Data == "" {
		return nil, ErrEmptyPush
	}
	raw, err := base64.StdEncoding.DecodeString(req.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	log.Debug("Decoded push message", "subscription", req.Subscription, "messageID", req.Message.ID)
	return raw, nil
}

// EncodePush builds the push request body Pub/Sub would deliver for data.
func EncodePush(subscription string, data any) ([]byte, error) {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return nil, err
	}
	var req PushRequest
	req.Subscription = subscription
	req.Message.Data = base64.StdEncoding.EncodeToString(payload)
	return json.Marshal(req)
}
