// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, lifecycle journaling, and debug introspection layer.
// Part of the hioload-thread bootstrap core.
//
// Provides concurrent-safe observation primitives including:
//   - Counter and gauge telemetry for thread lifecycle events
//   - A bounded journal of start/exit/adopt transitions
//   - Debug hooks and probe registration with state export
//
// Everything here is observational: nothing in this package sits on the
// thread handoff path. This package is cross-platform and
// build-tag-partitioned as needed.
package control
