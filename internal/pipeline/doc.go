// Package pipeline holds the executable object graph the readers produce:
// the Document (model + ordered task groups) and the TaskGroup (ordered
// tasks, a scheduling mode fixed at construction, and the variable map the
// group's tasks accumulate results into).
//
// The variable map is the single piece of state multiple workers touch when
// a group runs in parallel, so its access is synchronized here rather than
// at every call site.
package pipeline
