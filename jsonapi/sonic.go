//go:build amd64 && (linux || windows || darwin)

package jsonapi

import (
	"io"

	"github.com/bytedance/sonic"
)

type SonicConfig = sonic.Config

type sonicAPI struct {
	api sonic.API
}

func (s *sonicAPI) Marshal(v any) ([]byte, error) {
	return s.api.Marshal(v)
}

func (s *sonicAPI) Unmarshal(data []byte, v any) error {
	return s.api.Unmarshal(data, v)
}

func (s *sonicAPI) NewEncoder(w io.Writer) Encoder {
	return s.api.NewEncoder(w)
}

func (s *sonicAPI) NewDecoder(r io.Reader) Decoder {
	return s.api.NewDecoder(r)
}

// Sonic returns the bytedance/sonic backend.
func Sonic(config sonic.Config) API {
	return &sonicAPI{api: config.Froze()}
}
