package remote

import "fmt"

// ErrorKind classifies a failed remote call.
type ErrorKind string

const (
	KindNetwork        ErrorKind = "network"
	KindTimeout        ErrorKind = "timeout"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindServerRejected ErrorKind = "server_rejected"
	KindEmptyResponse  ErrorKind = "empty_response"
)

// ChannelError is the structured error returned by Send. All kinds are
// non-fatal to the user: the orchestrator converts them into a fallback
// decision and never surfaces them to the presentation layer.
type ChannelError struct {
	Kind ErrorKind
	Err  error
}

func (e *ChannelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote channel %s: %v", e.Kind, e.Err)
	}
	return "remote channel " + string(e.Kind)
}

func (e *ChannelError) Unwrap() error { return e.Err }
