package domain

// ActionStatus indicates the outcome of one provisioning action.
type ActionStatus string

const (
	ActionDone    ActionStatus = "done"
	ActionSkipped ActionStatus = "skipped"
	ActionFailed  ActionStatus = "failed"
)

// ActionResult describes a single provisioning step.
type ActionResult struct {
	Name   string
	Status ActionStatus
	Detail string
}

// SetupReport aggregates provisioning actions for one setup run.
type SetupReport struct {
	Actions []ActionResult
}

// Succeeded reports whether no action failed. Skipped actions
// (already-satisfied state) do not count against success.
func (r SetupReport) Succeeded() bool {
	for _, action := range r.Actions {
		if action.Status == ActionFailed {
			return false
		}
	}
	return true
}

// RuntimeResult describes the state of the language runtime sandbox.
type RuntimeResult struct {
	Root        string
	Created     bool
	Interpreter string
}
