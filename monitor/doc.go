// File: monitor/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Topic monitoring support. Topics are conceptually "a thing that can
// happen": delivery of SIGINT, a child process exiting. Posting to a
// topic records that the thing happened; each topic carries a current
// generation, and a generation larger than the one from a previous
// query means someone posted in between.
//
// The TopicMonitor ties this together: it provides the current topic
// generations and a blocking wait for any topic in a set to change.
// That is the real power of topics: one call can wait for a SIGCHLD
// delivery OR an internal exit, without busy-polling and without the
// posting side ever taking a lock. Post is safe from signal handler
// context: it touches only an atomic bitmask and performs one
// non-blocking pipe write.
package monitor
