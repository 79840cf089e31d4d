package provider

import "context"

// Initializable is optionally implemented by providers that need to bootstrap
// before handling calls (inject a script tag, seed a global queue).
// Registry.Build calls Init synchronously right after construction.
type Initializable interface {
	Init(ctx context.Context) error
}

// Flusher is optionally implemented by providers whose capability calls
// schedule asynchronous work. Flush returns once that work is done or ctx
// expires.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Closeable is optionally implemented by providers that hold resources.
// The dispatcher calls Close when a later Initialize discards the instance.
type Closeable interface {
	Close(ctx context.Context) error
}
