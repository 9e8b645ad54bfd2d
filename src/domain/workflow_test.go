package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixEntries(t *testing.T) {
	t.Parallel()

	// given
	matrix := Matrix{
		{Name: "python-version", Values: []string{"3.7", "3.8", "3.9"}},
		{Name: "os", Values: []string{"linux", "darwin"}},
	}

	// when
	entries := matrix.Entries()

	// then
	assert.Len(t, entries, 6)
	assert.Equal(t, "python-version=3.7,os=linux", entries[0].String())
	assert.Equal(t, "python-version=3.7,os=darwin", entries[1].String())
	assert.Equal(t, "python-version=3.9,os=darwin", entries[5].String())
}

func TestMatrixEntriesSingleAxis(t *testing.T) {
	t.Parallel()

	entries := Matrix{{Name: "python-version", Values: []string{"3.7", "3.8", "3.9"}}}.Entries()

	versions := []string{}
	for _, entry := range entries {
		v, ok := entry.Get("python-version")
		assert.True(t, ok)
		versions = append(versions, v)
	}
	assert.Equal(t, []string{"3.7", "3.8", "3.9"}, versions)
}

func TestMatrixEntriesEmptyAxis(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Matrix{}.Entries())
	assert.Empty(t, Matrix{{Name: "a", Values: nil}}.Entries())
}

func TestMatrixEntryExpand(t *testing.T) {
	t.Parallel()

	entry := MatrixEntry{{Axis: "python-version", Value: "3.8"}}

	assert.Equal(t, "python3.8 -m venv", entry.Expand("python${{ matrix.python-version }} -m venv"))
	assert.Equal(t, "python3.8", entry.Expand("python${{matrix.python-version}}"))
	assert.Equal(t, "${{ matrix.os }}", entry.Expand("${{ matrix.os }}"))
	assert.Equal(t, []string{"MATRIX_PYTHON_VERSION=3.8"}, entry.Env())
}

func TestTriggerMatches(t *testing.T) {
	t.Parallel()

	trigger := Trigger{Branches: []string{"main", "master", "release/*"}}

	assert.True(t, trigger.Matches("main"))
	assert.True(t, trigger.Matches("master"))
	assert.True(t, trigger.Matches("release/1.0"))
	assert.False(t, trigger.Matches("feature/x"))
	assert.False(t, trigger.Matches("mainline"))
	assert.False(t, trigger.Matches(""))
	assert.False(t, Trigger{}.Matches("main"))
}

func TestWorkflowValidate(t *testing.T) {
	t.Parallel()

	valid := Workflow{
		Name:      "tests",
		On:        map[EventType]Trigger{EventTypePush: {Branches: []string{"main"}}},
		Matrix:    Matrix{{Name: "python-version", Values: []string{"3.9"}}},
		Provision: Provision{Interpreter: "python", Axis: "python-version"},
		Test:      Command{Name: "tox", Run: "tox"},
	}
	assert.NoError(t, valid.Validate())

	noTriggers := valid
	noTriggers.On = nil
	assert.Error(t, noTriggers.Validate())

	badAxis := valid
	badAxis.Provision.Axis = "ruby-version"
	assert.Error(t, badAxis.Validate())

	badTimeout := valid
	badTimeout.Timeout = "soon"
	assert.Error(t, badTimeout.Validate())

	noTest := valid
	noTest.Test = Command{}
	assert.Error(t, noTest.Validate())
}
