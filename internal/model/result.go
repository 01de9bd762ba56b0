package model

// Result is the outcome of one task execution: the task's variable carrying
// the produced value, and whether the execution succeeded.
type Result struct {
	Variable Variable
	Success  bool
}
