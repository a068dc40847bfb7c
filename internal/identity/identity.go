package identity

import "context"

// Provider supplies the bearer credential used for remote calls. It is the
// minimal surface the core needs from the identity subsystem; implementations
// are easy to mock in tests.
type Provider interface {
	CurrentCredential(ctx context.Context) (string, error)
}

// StaticProvider returns a fixed credential, typically read from config.
type StaticProvider struct {
	Token string
}

func (p StaticProvider) CurrentCredential(ctx context.Context) (string, error) {
	return p.Token, nil
}
