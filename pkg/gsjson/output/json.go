// Package output serializes conversion results.
package output

import (
	"bytes"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Indent is the indentation used by pretty output.
const Indent = "    "

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", Indent)
	}
	return json.Marshal(v)
}

// Write serializes v to w followed by a newline.
func Write(w io.Writer, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Grow(len(data) + 1)
	buf.Write(data)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// WriteFile serializes v into the file at path.
func WriteFile(path string, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
