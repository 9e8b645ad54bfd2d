package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBranch(t *testing.T) {
	t.Parallel()

	push := Event{Type: EventTypePush, Ref: "refs/heads/main"}
	assert.Equal(t, "main", push.Branch())

	pr := Event{Type: EventTypePullRequest, Ref: "refs/heads/feature/x", BaseRef: "master"}
	assert.Equal(t, "master", pr.Branch())

	tag := Event{Type: EventTypePush, Ref: "refs/tags/v1.0"}
	assert.Equal(t, "refs/tags/v1.0", tag.Branch())
}

func TestEventUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var event Event
	assert.NoError(t, json.Unmarshal([]byte(`{"type":"pull_request","ref":"refs/heads/x","base_ref":"main"}`), &event))
	assert.Equal(t, EventTypePullRequest, event.Type)
	assert.Equal(t, "main", event.Branch())

	assert.Error(t, json.Unmarshal([]byte(`{"type":"release","ref":"main"}`), &event))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"pull_request","ref":"x"}`), &event))
}

func TestEventWithoutTypeIsInvalid(t *testing.T) {
	t.Parallel()

	var event Event
	assert.Error(t, json.Unmarshal([]byte(`{"ref":"refs/heads/main"}`), &event))
	assert.Error(t, Event{Ref: "refs/heads/main"}.Validate())

	_, err := EventType(0).MarshalText()
	assert.Error(t, err)
}

func TestEventTypeMarshal(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(map[EventType]int{EventTypePullRequest: 1})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"pull_request":1}`, string(b))
}
