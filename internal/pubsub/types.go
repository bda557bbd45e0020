package pubsub

import (
	"errors"

	"cloud.google.com/go/pubsub"
)

var ErrEmptyPush = errors.New("push request carries no data")

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
)

// PushRequest is the body Pub/Sub POSTs to a push subscription endpoint.
type PushRequest struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID   string `json:"messageId"`
		Data string `json:"data"`
	} `json:"message"`
}
