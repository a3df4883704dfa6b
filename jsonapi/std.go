package jsonapi

import (
	"encoding/json"
	"io"
)

type stdAPI struct{}

func (stdAPI) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdAPI) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (stdAPI) NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

func (stdAPI) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// Std returns the encoding/json backend.
func Std() API {
	return stdAPI{}
}
