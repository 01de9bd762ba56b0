// Package executor drives a document run: groups in declaration order,
// tasks within a group either strictly sequential or fanned out one
// goroutine per task with a single collector draining the results channel.
//
// The collector pattern keeps the ordering rule explicit: in parallel mode
// every dispatched task finishes before the group's outcome is aggregated
// (join before aggregate), and all variable-map writes happen in one
// place. There is no short-circuit in either mode; a failed task never
// prevents its siblings from running.
//
// Tag filtering is pure: it only decides which tasks run, it never touches
// task or group state. A task without tags opts out of every filtered run.
package executor
