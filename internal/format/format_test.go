package format

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID        string `json:"id"`
	BaseURL   string `json:"baseUrl"`
	Completed bool   `json:"completed"`
	Count     int64  `json:"count"`
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample{ID: "1", Count: 3}, "", false))
	assert.Equal(t, `{"id":"1","baseUrl":"","completed":false,"count":3}`+"\n", buf.String())
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"data":   []sample{{ID: "1", BaseURL: "http://x", Completed: true, Count: 9007199254740993}},
		"_hints": []string{},
		"meta":   nil,
	}
	require.NoError(t, Write(&buf, v, "edn", false))
	assert.Equal(t,
		`{:hints [] :data [{:base-url "http://x" :completed true :count 9007199254740993 :id "1"}] :meta nil}`+"\n",
		buf.String())
}

func TestWriteEDNPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEDN(&buf, map[string]any{"a": []int{1, 2}}, true))
	assert.Equal(t, "{\n  :a [\n    1\n    2\n  ]\n}\n", buf.String())
}

type textOnly []string

func (t textOnly) WriteText(w io.Writer) error {
	for _, s := range t {
		if _, err := fmt.Fprintln(w, "-", s); err != nil {
			return err
		}
	}
	return nil
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, textOnly{"a", "b"}, "text", false))
	assert.Equal(t, "- a\n- b\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, sample{ID: "7"}, "text", false))
	assert.Contains(t, buf.String(), "id: \"7\"")
	assert.Contains(t, buf.String(), "completed: false")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(io.Discard, 1, "xml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}
