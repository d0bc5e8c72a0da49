// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - structured helpers (DebugKV, InfoKV, WarnKV, ErrorKV).
//
// The resolver and the CLI workflow accept a context and extract the logger
// from it, so every message carries the component name that produced it.
package logger
