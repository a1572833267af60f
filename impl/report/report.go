package report

import (
	"fmt"
	"io"

	"github.com/wiedzmin/loadchk/impl"
	"github.com/wiedzmin/loadchk/impl/tberrors"
	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	logger = impl.NewLogger()
}

// Helper produces busiest processes listing
type Helper interface {
	Run(stdout, stderr io.Writer) error
}

type Outcome int

const (
	Quiet Outcome = iota
	Reported
	HelperFailed
)

func (o Outcome) String() string {
	switch o {
	case Quiet:
		return "quiet"
	case Reported:
		return "reported"
	case HelperFailed:
		return "helper failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func Exceeds(load, threshold float64) bool {
	return load > threshold
}

func Summary(load, threshold float64) string {
	return fmt.Sprintf("Current load average %.2f exceeds %.2f", load, threshold)
}

type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	helper Helper
	logger *zap.Logger
}

// NewReporter creates reporter, nil log falls back to package logger
func NewReporter(stdout, stderr io.Writer, helper Helper, log *zap.Logger) *Reporter {
	if log == nil {
		log = logger
	}
	return &Reporter{
		stdout: stdout,
		stderr: stderr,
		helper: helper,
		logger: log,
	}
}

// Report stays silent unless load strictly exceeds threshold.
// Helper failures are logged as warnings and never fail the run.
func (r *Reporter) Report(load, threshold float64) Outcome {
	l := r.logger.Sugar()
	l.Debugw("[Report]", "load", load, "threshold", threshold)
	if !Exceeds(load, threshold) {
		return Quiet
	}
	_, err := fmt.Fprintln(r.stdout, Summary(load, threshold))
	if err != nil {
		l.Warnw("[Report] failed to write summary", "err", err)
	}
	if r.helper == nil {
		return Reported
	}
	err = r.helper.Run(r.stdout, r.stderr)
	if err != nil {
		l.Warnw("[Report] busiest processes snapshot failed", "err", err, "status", tberrors.ExitSnapshotFailed)
		return HelperFailed
	}
	return Reported
}
