// Package codec encodes response bodies and decodes request payloads.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const ContentTypeJSON = "application/json"

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

var ErrTrailingContent = errors.New("json trailing content")

type jsonStrict struct{}

// JSONStrict writes compact JSON without HTML escaping and decodes exactly one
// value with no unknown fields.
var JSONStrict Codec = jsonStrict{}

func (jsonStrict) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonStrict) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	// must be EOF
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return ErrTrailingContent
	}
	return nil
}

func (jsonStrict) ContentType() string { return ContentTypeJSON }
