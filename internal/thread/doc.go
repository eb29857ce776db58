// File: internal/thread/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native thread bootstrap internals: one-shot startup descriptors, the entry
// trampoline, stack-bounds accounting, the TID-keyed per-thread cell, the
// default OS starter and the live-thread registry.
//
// Cross-platform (Linux/Windows) with build-tag partitioned platform files;
// unsupported platforms surface explicit configuration errors instead of
// silent misbehavior. No locks guard the handoff path itself: correctness
// rests on single-ownership transfer of the startup descriptor, never on
// mutual exclusion.
package thread
