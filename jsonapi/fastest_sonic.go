//go:build amd64 && (linux || windows || darwin)

package jsonapi

// Fastest returns the fastest backend available on this platform.
func Fastest() API {
	return Sonic(DefaultConfig().SonicConfig)
}

// FastestWithConfig is Fastest with a custom configuration.
func FastestWithConfig(config Config) API {
	return Sonic(config.SonicConfig)
}

// FastestKind reports which backend Fastest picks on this platform.
func FastestKind() BackendKind {
	return BackendKindSonic
}
