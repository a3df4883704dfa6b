package jsonapi

import (
	"github.com/bytedance/sonic"
	"github.com/goccy/go-json"
)

type Config struct {
	SonicConfig sonic.Config
	GoJSON      GoJSONConfig
}

type GoJSONConfig struct {
	EncodeOptions []json.EncodeOptionFunc
	DecodeOptions []json.DecodeOptionFunc
}

func DefaultConfig() Config {
	return Config{
		SonicConfig: sonic.Config{
			// The decoded strings can be retained by the caller for an
			// arbitrarily long time. Don't pin the input buffer with them.
			CopyString: true,
			EscapeHTML: true,
			// Map keys of the serialized shape carry no order guarantee.
			SortMapKeys: false,
		},
		GoJSON: GoJSONConfig{
			EncodeOptions: []json.EncodeOptionFunc{
				json.UnorderedMap(),
			},
		},
	}
}
