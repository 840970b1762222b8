// Package format renders command results for the CLI.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats lists the accepted --format values.
var Formats = []string{"json", "edn", "text"}

// Texter is implemented by values with a human-oriented rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Write writes v in the requested format.
//
//   - json (default): strict JSON, one document per call
//   - edn: the same data as EDN, with kebab-case keywords
//   - text: v's WriteText when it implements Texter, YAML otherwise
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteJSON writes strict JSON. Anything beyond the payload belongs in a meta
// object or _hints, never in free text.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteText(w io.Writer, v any) error {
	if t, ok := v.(Texter); ok {
		return t.WriteText(w)
	}
	// Round-trip through JSON so YAML keys follow the json tags.
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(x); err != nil {
		return err
	}
	return enc.Close()
}
