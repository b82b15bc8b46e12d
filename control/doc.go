// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection layer for the topic monitoring library.
//
// Provides concurrent-safe primitives for observing a running monitor
// from the outside:
//   - Debug probe registration and state dumps
//   - A counter-oriented metrics registry
//
// Nothing in this package sits on the posting or waiting hot paths;
// components publish into it on demand.
package control
