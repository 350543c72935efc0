package atlas

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"badc0de.net/pkg/dfeatlas/paths"
)

const indent = "    "

// Marshal renders v as indented JSON with every object's keys sorted.
//
// Struct fields are emitted in declaration order by encoding/json, so v is
// first round-tripped through generic maps, which the encoder always writes
// sorted. Numbers keep their literal form. HTML characters are not escaped
// and there is no trailing newline.
func Marshal(v interface{}) ([]byte, error) {
	raw, err := encode(v, "")
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, errors.Wrap(err, "atlas.Marshal: decoding intermediate form")
	}
	return encode(generic, indent)
}

func encode(v interface{}, ind string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if ind != "" {
		enc.SetIndent("", ind)
	}
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "atlas.Marshal")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile marshals v and replaces the file at path with the result. Nothing
// is written if marshalling fails.
func WriteFile(path string, v interface{}) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	return paths.WriteFile(path, b)
}
