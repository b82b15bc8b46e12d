// File: internal/wakeup/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Self-pipe wakeup channel: a unidirectional byte channel with a
// non-blocking write end and a blocking read end, used purely as an
// edge trigger. The byte payload carries no information; "at least one
// byte is readable" is the whole contract. The write end is safe for
// concurrent unsynchronized use, including from signal handler
// context. The read end must only be touched by one thread at a time.
package wakeup
