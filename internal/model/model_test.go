package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatch(t *testing.T) {
	open := Task{ID: "1", Title: "open"}
	done := Task{ID: "2", Title: "done", Completed: true}

	for _, tc := range []struct {
		f        Filter
		open     bool
		complete bool
	}{
		{FilterAll, true, true},
		{FilterActive, true, false},
		{FilterCompleted, false, true},
	} {
		assert.Equal(t, tc.open, tc.f.Match(open), "filter=%s open task", tc.f)
		assert.Equal(t, tc.complete, tc.f.Match(done), "filter=%s completed task", tc.f)
	}
}

func TestFilterApplyKeepsOrder(t *testing.T) {
	tasks := []Task{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
		{ID: "d"},
	}
	got := FilterCompleted.Apply(tasks)
	require.Len(t, got, 2)
	assert.Equal(t, TaskID("a"), got[0].ID)
	assert.Equal(t, TaskID("c"), got[1].ID)

	assert.Len(t, FilterAll.Apply(tasks), 4)
	assert.Len(t, FilterActive.Apply(nil), 0)
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{" Active ", FilterActive, false},
		{"completed", FilterCompleted, false},
		{"done", FilterCompleted, false},
		{"archived", FilterAll, true},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseFilter(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseFilter(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseFilter(%q)", tc.in)
	}
}

func TestFilterNextCycles(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}

func TestNormalizeTitle(t *testing.T) {
	got, err := NormalizeTitle("  buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeTitle(in)
		var ve ValidationError
		require.True(t, errors.As(err, &ve), "NormalizeTitle(%q) should fail validation", in)
		assert.Equal(t, "title", ve.Field)
	}
}

func TestTaskIDAcceptsNumbers(t *testing.T) {
	var tasks []Task
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"A"},{"id":"x-2","title":"B","completed":true}]`), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, TaskID("1"), tasks[0].ID)
	assert.Equal(t, TaskID("x-2"), tasks[1].ID)
	assert.True(t, tasks[1].Completed)
}

func TestTaskPatchOmitsNilFields(t *testing.T) {
	title := "B"
	b, err := json.Marshal(TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"B"}`, string(b))
	assert.True(t, TaskPatch{}.Empty())
}
