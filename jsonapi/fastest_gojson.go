//go:build !amd64 || (amd64 && !(linux || windows || darwin))

package jsonapi

// Fastest returns the fastest backend available on this platform.
func Fastest() API {
	config := DefaultConfig()
	return GoJSON(config.GoJSON.EncodeOptions, config.GoJSON.DecodeOptions)
}

// FastestWithConfig is Fastest with a custom configuration.
func FastestWithConfig(config Config) API {
	return GoJSON(config.GoJSON.EncodeOptions, config.GoJSON.DecodeOptions)
}

// FastestKind reports which backend Fastest picks on this platform.
func FastestKind() BackendKind {
	return BackendKindGoJSON
}
