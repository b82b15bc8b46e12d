// File: api/topic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The closed set of observable topics. A topic is "a thing that can
// happen": delivery of a signal group, an internal process exit.
// Adding a topic is a compile-time change, not a runtime registration.

package api

// Topic identifies one observable event class. It carries no data and
// is used only as an index.
type Topic uint8

const (
	// TopicSigHupInt corresponds to delivery of SIGHUP or SIGINT.
	TopicSigHupInt Topic = iota

	// TopicSigChld corresponds to delivery of SIGCHLD.
	TopicSigChld

	// TopicInternalExit corresponds to an internal process exit.
	TopicInternalExit

	// NumTopics is the size of the topic set.
	NumTopics = iota
)

// AllTopics returns every topic, allowing easy iteration.
func AllTopics() [NumTopics]Topic {
	return [NumTopics]Topic{TopicSigHupInt, TopicSigChld, TopicInternalExit}
}

// String returns the topic name.
func (t Topic) String() string {
	switch t {
	case TopicSigHupInt:
		return "sighupint"
	case TopicSigChld:
		return "sigchld"
	case TopicInternalExit:
		return "internal_exit"
	}
	panic("unknown topic")
}
