// Package task defines the runnable units of a pipeline. The kinds form a
// closed set (shell script, docker container run, docker image build)
// dispatched through the Task interface. Every kind shares the Base fields
// (title, code, result variable name, tags) and the same run shape: resolve
// variable references in the code, hand the resolved code to the kind's
// execution collaborator, and report a Result carrying the task's variable.
//
// A task is constructed once by a reader and executed at most once per run;
// the only state written during execution is the Result it returns.
package task
