package model

// Status is a monitoring plugin state.
type Status int

// The zero value is StatusUnknown so an unset status never reads as OK.
const (
	StatusUnknown Status = iota
	StatusOK
	StatusWarning
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	default:
		return 3
	}
}
