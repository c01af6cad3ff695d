package dto

type Outcome string

const (
	OutcomeNoApps      Outcome = "no_apps"
	OutcomeNoSelection Outcome = "no_selection"
	OutcomeLaunched    Outcome = "launched"
)

type ListOutput struct {
	Header string
	Rows   []string
}

type RunResult struct {
	Outcome    Outcome
	Identifier string
	Command    string
	ExitCode   int
}
