package tberrors

import "fmt"

// Process exit statuses
const (
	ExitUsage           = 1
	ExitLoadUnavailable = 2
	// ExitSnapshotFailed marks helper failures internally, it is never returned to the OS
	ExitSnapshotFailed = 3
)

type ErrUsage struct {
	Reason string
}

func (e ErrUsage) Error() string {
	return fmt.Sprintf("invalid usage: %s", e.Reason)
}

func (e ErrUsage) ExitCode() int {
	return ExitUsage
}

type ErrLoadUnavailable struct {
	Err error
}

func (e ErrLoadUnavailable) Error() string {
	if e.Err == nil {
		return "load averages unobtainable"
	}
	return fmt.Sprintf("load averages unobtainable: %v", e.Err)
}

func (e ErrLoadUnavailable) Unwrap() error {
	return e.Err
}

func (e ErrLoadUnavailable) ExitCode() int {
	return ExitLoadUnavailable
}

type ErrSnapshotFailed struct {
	Command string
	Err     error
}

func (e ErrSnapshotFailed) Error() string {
	return fmt.Sprintf("process snapshot '%s' failed: %v", e.Command, e.Err)
}

func (e ErrSnapshotFailed) Unwrap() error {
	return e.Err
}

func (e ErrSnapshotFailed) ExitCode() int {
	return ExitSnapshotFailed
}
