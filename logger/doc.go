// Package logger provides structured logging for the analytics dispatcher
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with map fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("dispatcher")
//	log.Info("provider initialized", logger.Fields("provider", "Mixpanel"))
package logger
