// File: api/generations.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-topic generation counters. Associated with each topic is a
// current generation, a 64 bit value. When a query of a topic returns
// a larger generation than the previous query, someone posted to the
// topic in between. Postings may be coalesced: two posts may advance
// the generation by only 1. The only guarantee is that after a post,
// the current generation is larger than any previously queried value.

package api

import (
	"fmt"
	"strings"
)

// Generation is a counter incremented every time a topic is posted.
// It is 64 bit so it will never wrap.
type Generation uint64

// InvalidGeneration indicates the topic is not of interest. It is
// never produced as a real counter value.
const InvalidGeneration = ^Generation(0)

// GenList is a value type holding one generation per topic. It is a
// snapshot, not a live view: copy it freely. The zero value means
// "interested in everything, nothing seen yet"; Invalids() means
// "interested in nothing".
//
// GenList is comparable; use == for element-wise equality.
type GenList struct {
	SigHupInt    Generation
	SigChld      Generation
	InternalExit Generation
}

// Invalids returns a list containing invalid generations only.
func Invalids() GenList {
	return GenList{
		SigHupInt:    InvalidGeneration,
		SigChld:      InvalidGeneration,
		InternalExit: InvalidGeneration,
	}
}

// At returns the value for a topic.
func (g GenList) At(t Topic) Generation {
	switch t {
	case TopicSigHupInt:
		return g.SigHupInt
	case TopicSigChld:
		return g.SigChld
	case TopicInternalExit:
		return g.InternalExit
	}
	panic("unknown topic")
}

// SetAt sets the value for a topic.
func (g *GenList) SetAt(t Topic, v Generation) {
	switch t {
	case TopicSigHupInt:
		g.SigHupInt = v
	case TopicSigChld:
		g.SigChld = v
	case TopicInternalExit:
		g.InternalExit = v
	default:
		panic("unknown topic")
	}
}

// AsArray returns the list as a fixed-length array, indexed by topic.
func (g GenList) AsArray() [NumTopics]Generation {
	return [NumTopics]Generation{g.SigHupInt, g.SigChld, g.InternalExit}
}

// IsValid reports whether a topic is of interest to this list.
func (g GenList) IsValid(t Topic) bool {
	return g.At(t) != InvalidGeneration
}

// AnyValid reports whether any topic is of interest.
func (g GenList) AnyValid() bool {
	for _, gen := range g.AsArray() {
		if gen != InvalidGeneration {
			return true
		}
	}
	return false
}

// SetMinFrom sets the value of a topic to the smaller of our value and
// the value in other.
func (g *GenList) SetMinFrom(t Topic, other GenList) {
	if g.At(t) > other.At(t) {
		g.SetAt(t, other.At(t))
	}
}

// Describe returns a string representation for debugging.
func (g GenList) Describe() string {
	var sb strings.Builder
	for i, t := range AllTopics() {
		if i > 0 {
			sb.WriteString(", ")
		}
		if g.IsValid(t) {
			fmt.Fprintf(&sb, "%s:%d", t, g.At(t))
		} else {
			fmt.Fprintf(&sb, "%s:-", t)
		}
	}
	return sb.String()
}
