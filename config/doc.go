// Package config loads logger settings from the environment or a yaml
// file and applies them to a Logger.
//
// It is deliberately separate from the logger package: the facade itself
// has no opinion on where its threshold comes from, and embedded-profile
// builds that configure the logger in code never link this package or
// its dependencies.
//
//	cfg, err := config.ReadEnv()
//	if err != nil { ... }
//	if err := cfg.Apply(logger.Default(), sink.FromWriter(os.Stderr)); err != nil { ... }
package config
