package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIState_RoundTrip(t *testing.T) {
	s := Store{Dir: filepath.Join(t.TempDir(), "state")}

	st, err := s.LoadUIState()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Version)
	assert.Equal(t, "", st.Filter)

	require.NoError(t, s.SaveUIState(&UIState{Filter: "completed"}))

	st, err = s.LoadUIState()
	require.NoError(t, err)
	assert.Equal(t, "completed", st.Filter)
	assert.Equal(t, 1, st.Version)
}

func TestUIState_CorruptIsTreatedAsMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, uiStateFileName), []byte("{nope"), 0o644))

	st, err := Store{Dir: dir}.LoadUIState()
	require.NoError(t, err)
	assert.Equal(t, "", st.Filter)
}

func TestUIState_NoDirIsNoop(t *testing.T) {
	s := Store{}
	require.NoError(t, s.SaveUIState(&UIState{Filter: "active"}))
	st, err := s.LoadUIState()
	require.NoError(t, err)
	assert.Equal(t, "", st.Filter)
}
