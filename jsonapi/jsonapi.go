// Package jsonapi abstracts the JSON text encoder/decoder used at the
// boundary of the framework, with interchangeable backends.
package jsonapi

import "io"

type (
	API interface {
		MarshalUnmarshaler
		EncodeDecoder
	}

	MarshalUnmarshaler interface {
		Marshal(v any) ([]byte, error)
		Unmarshal(data []byte, v any) error
	}

	EncodeDecoder interface {
		NewEncoder(w io.Writer) Encoder
		NewDecoder(r io.Reader) Decoder
	}

	Encoder interface {
		Encode(v any) error
	}

	Decoder interface {
		Decode(v any) error
	}
)
