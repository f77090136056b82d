package domain

// ShellName enumerates supported shells for alias injection.
type ShellName string

const (
	ShellUnknown ShellName = "unknown"
	ShellZsh     ShellName = "zsh"
	ShellBash    ShellName = "bash"
)

// ShellInstallResult describes the outcome of adding or removing the
// assistant alias line in the user's shell rc file.
type ShellInstallResult struct {
	Shell     ShellName
	RCFile    string
	RCUpdated bool
}

// ShellStatus captures whether the alias line is present.
type ShellStatus struct {
	Shell       ShellName
	RCFile      string
	LinePresent bool
	Error       string
}
