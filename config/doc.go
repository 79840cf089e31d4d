// Package config loads the dispatcher's service configuration and its
// provider settings.
//
// Service configuration goes through Viper: a config.yml found in the usual
// locations, an optional .env file, then ANALYTICS_-prefixed environment
// variables on top:
//
//	var cfg config.Config
//	err := config.LoadConfig("analytics", &cfg)
//
// ANALYTICS_LOGGING_LEVEL=debug overrides logging.level.
//
// Provider settings are read separately with LoadProviders, because Viper
// lower-cases keys and loses ordering, and both matter for providers: option
// names are case-sensitive and list order is fan-out order.
//
//	providers:
//	  - name: Mixpanel
//	    key: 3f1c...
//	  - name: Intercom
//	    options:
//	      appId: abc
//	      activator: "#help"
//
// The mapping form is accepted too and keeps document order:
//
//	providers:
//	  Mixpanel: 3f1c...
//	  Intercom: {appId: abc}
package config
