package core

// Task is an opaque, caller-supplied unit of work with a single Execute
// operation. Ownership passes from the producer to the pool and then to the
// executing worker; the pool retains no reference after dispatch.
//
// A Task must not be reused concurrently with pool execution. Tasks carry no
// pool-visible state and no cancellation: Execute runs to completion on
// whichever worker dequeues it.
type Task interface {
	Execute()
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func()

// Execute implements Task.
func (f TaskFunc) Execute() {
	f()
}

// NamedTask wraps a Task with a human-readable name used in logs.
type NamedTask struct {
	name string
	task Task
}

// NewNamedTask creates a NamedTask. A nil inner task yields a nil NamedTask
// so that TrySubmit's nil rejection still applies.
func NewNamedTask(name string, task Task) *NamedTask {
	if task == nil {
		return nil
	}
	return &NamedTask{name: name, task: task}
}

// Execute implements Task.
func (t *NamedTask) Execute() {
	t.task.Execute()
}

// Name returns the task name.
func (t *NamedTask) Name() string {
	return t.name
}

// taskName returns a label for logging. Tasks exposing Name() get their own
// label; everything else is anonymous.
func taskName(t Task) string {
	if named, ok := t.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "task"
}
