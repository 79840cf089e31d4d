// Package provider defines the contract every analytics backend adapter
// implements and the registry the dispatcher builds instances from.
//
// A provider is any value with a Name. What it can do is expressed by the
// optional capability interfaces it also implements:
//   - Identifier: receives identify calls (user id + traits)
//   - Tracker: receives track calls (event + properties)
//   - PageViewer: receives pageview calls (url)
//
// Capability presence is checked with a type assertion at call time, so an
// adapter only implements what its backend supports.
//
// Opt-in lifecycle:
//   - Initializable: bootstrap run right after construction (inject the
//     remote script, seed the global command queue)
//   - Flusher: reports when asynchronous work queued by earlier calls is done
//   - Closeable: releases resources when a later Initialize discards the instance
//
// # Registration
//
// A Descriptor is a plain record: name, optional default option key, default
// options and a Factory. Construction is a pure function of the descriptor
// and the caller's settings:
//
//	reg := provider.NewRegistry()
//	reg.Register(provider.Descriptor{
//	    Name:       "KISSmetrics",
//	    DefaultKey: "apiKey",
//	    New:        newKISSmetrics,
//	})
//	p, err := reg.Build(ctx, doc, "KISSmetrics", "api-key")
//
// # Middleware
//
// Every capability call goes through a Handler chain. Use Chain to compose
// the logging, metrics, tracing and recovery middlewares:
//
//	deliver := provider.Chain(
//	    provider.WithTracing("analytics"),
//	    provider.WithMetrics(metrics),
//	    provider.WithLogging(log),
//	    provider.WithRecovery(),
//	)(call)
package provider
