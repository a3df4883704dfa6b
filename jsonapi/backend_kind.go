package jsonapi

type BackendKind int

const (
	BackendKindSonic BackendKind = iota
	BackendKindGoJSON
)

func (k BackendKind) Name() string {
	switch k {
	case BackendKindSonic:
		return "sonic"
	case BackendKindGoJSON:
		return "go-json"
	}
	return "<invalid>"
}
