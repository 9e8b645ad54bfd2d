package service

import (
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/gauntlet/src/domain"
)

func testWorkflow() domain.Workflow {
	branches := domain.Trigger{Branches: []string{"main", "master"}}
	return domain.Workflow{
		Name: "tests",
		On: map[domain.EventType]domain.Trigger{
			domain.EventTypePush:        branches,
			domain.EventTypePullRequest: branches,
		},
		Matrix: domain.Matrix{
			{Name: "python-version", Values: []string{"3.7", "3.8", "3.9"}},
		},
		Provision: domain.Provision{Interpreter: "python", Axis: "python-version"},
		Install: []domain.Command{
			{Name: "upgrade pip", Run: "python -m pip install --upgrade pip"},
			{Name: "install wheel", Run: "pip install wheel"},
			{Name: "install project", Run: "pip install '.[geoip,test]'"},
		},
		Test: domain.Command{Name: "tox", Run: "tox"},
	}
}

func TestTriggerEvaluate(t *testing.T) {
	t.Parallel()

	triggerService := NewTriggerService(nil, &log.Logger)
	workflow := testWorkflow()

	for _, tc := range []struct {
		name      string
		event     domain.Event
		triggered bool
	}{
		{"push to main", domain.Event{Type: domain.EventTypePush, Ref: "refs/heads/main"}, true},
		{"push to master", domain.Event{Type: domain.EventTypePush, Ref: "master"}, true},
		{"push to feature", domain.Event{Type: domain.EventTypePush, Ref: "refs/heads/feature/x"}, false},
		{"pull request into main", domain.Event{Type: domain.EventTypePullRequest, Ref: "refs/pull/1/merge", BaseRef: "main"}, true},
		{"pull request into develop", domain.Event{Type: domain.EventTypePullRequest, Ref: "refs/heads/main", BaseRef: "develop"}, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.triggered, triggerService.Evaluate(workflow, tc.event))
		})
	}
}

func TestTriggerEvaluateUndeclaredEventType(t *testing.T) {
	t.Parallel()

	// given
	workflow := testWorkflow()
	delete(workflow.On, domain.EventTypePullRequest)
	event := domain.Event{Type: domain.EventTypePullRequest, BaseRef: "main"}

	// when
	triggered := NewTriggerService(nil, &log.Logger).Evaluate(workflow, event)

	// then
	assert.False(t, triggered)
}
