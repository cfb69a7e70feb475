package proximity

import "context"

// Authorizer reports whether the platform allows location monitoring and
// notification delivery
type Authorizer interface {
	Authorized(ctx context.Context) (bool, error)
}

// StaticAuthorizer is a fixed authorization answer, typically from configuration
type StaticAuthorizer bool

func (a StaticAuthorizer) Authorized(context.Context) (bool, error) {
	return bool(a), nil
}
