package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type EventType uint

// The zero value is not a valid event type,
// so an event without one never passes validation.
const (
	EventTypePush EventType = iota + 1
	EventTypePullRequest
)

var EventTypes = []EventType{EventTypePush, EventTypePullRequest}

func (self EventType) String() string {
	switch self {
	case EventTypePush:
		return "push"
	case EventTypePullRequest:
		return "pull_request"
	default:
		return fmt.Sprintf("EventType(%d)", uint(self))
	}
}

func (self *EventType) FromString(str string) error {
	switch str {
	case "push":
		*self = EventTypePush
	case "pull_request":
		*self = EventTypePullRequest
	default:
		return fmt.Errorf("Unknown event type %q", str)
	}
	return nil
}

func (self *EventType) UnmarshalText(text []byte) error {
	return self.FromString(string(text))
}

func (self EventType) MarshalText() ([]byte, error) {
	switch self {
	case EventTypePush, EventTypePullRequest:
		return []byte(self.String()), nil
	default:
		return nil, fmt.Errorf("Unknown value %d", uint(self))
	}
}

const refHeadsPrefix = "refs/heads/"

// Event is a repository event normalized from whatever produced it.
type Event struct {
	Type       EventType `json:"type"`
	Ref        string    `json:"ref"`
	BaseRef    string    `json:"base_ref,omitempty"`
	Repository string    `json:"repository,omitempty"`
	Revision   string    `json:"revision,omitempty"`
	// Source is a go-getter URL of the tree to test.
	// Empty means the current working directory.
	Source string `json:"source,omitempty"`
}

// Branch returns the branch the event targets.
// For pull requests that is the base branch, not the head.
func (self Event) Branch() string {
	ref := self.Ref
	if self.Type == EventTypePullRequest {
		ref = self.BaseRef
	}
	return strings.TrimPrefix(ref, refHeadsPrefix)
}

func (self Event) Validate() error {
	switch self.Type {
	case EventTypePush, EventTypePullRequest:
	default:
		return fmt.Errorf("Event has no valid type")
	}
	if self.Type == EventTypePullRequest && self.BaseRef == "" {
		return fmt.Errorf("%s event without base_ref", self.Type)
	}
	if self.Type == EventTypePush && self.Ref == "" {
		return fmt.Errorf("%s event without ref", self.Type)
	}
	return nil
}

func (self *Event) UnmarshalJSON(data []byte) error {
	type event Event
	var e event
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	*self = Event(e)
	return self.Validate()
}
