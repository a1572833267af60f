package report

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiedzmin/loadchk/impl/tberrors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubHelper struct {
	output string
	err    error
	calls  int
}

func (h *stubHelper) Run(stdout, stderr io.Writer) error {
	h.calls++
	_, _ = io.WriteString(stdout, h.output)
	return h.err
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestReportQuiet(t *testing.T) {
	log, logs := observed()
	var stdout, stderr bytes.Buffer
	helper := &stubHelper{output: "PID\n"}
	r := NewReporter(&stdout, &stderr, helper, log)

	for _, c := range []struct{ load, threshold float64 }{
		{0.42, 1.0},
		{1.0, 1.0},
		{2.37, 3.5},
		{0, 0},
	} {
		assert.Equal(t, Quiet, r.Report(c.load, c.threshold))
	}
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, helper.calls)
	assert.Equal(t, 0, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestReportExceeded(t *testing.T) {
	log, _ := observed()
	var stdout, stderr bytes.Buffer
	helper := &stubHelper{output: "top - 10:00:00 up 1 day\n"}
	outcome := NewReporter(&stdout, &stderr, helper, log).Report(2.37, 1.0)

	assert.Equal(t, Reported, outcome)
	assert.Equal(t, "Current load average 2.37 exceeds 1.00\ntop - 10:00:00 up 1 day\n", stdout.String())
	assert.Equal(t, 1, helper.calls)
}

func TestReportHelperFailure(t *testing.T) {
	log, logs := observed()
	var stdout, stderr bytes.Buffer
	helper := &stubHelper{err: tberrors.ErrSnapshotFailed{Command: "top -b -n 1 | head -n 20", Err: errors.New("exit status 1")}}
	outcome := NewReporter(&stdout, &stderr, helper, log).Report(5, 1)

	assert.Equal(t, HelperFailed, outcome)
	assert.Equal(t, "Current load average 5.00 exceeds 1.00\n", stdout.String())

	warnings := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "[Report] busiest processes snapshot failed", warnings[0].Message)
	assert.Equal(t, int64(tberrors.ExitSnapshotFailed), warnings[0].ContextMap()["status"])
}

func TestReportWithoutHelper(t *testing.T) {
	var stdout bytes.Buffer
	outcome := NewReporter(&stdout, io.Discard, nil, zap.NewNop()).Report(1.5, 1)
	assert.Equal(t, Reported, outcome)
	assert.Equal(t, "Current load average 1.50 exceeds 1.00\n", stdout.String())
}

func TestNewReporterDefaultsLogger(t *testing.T) {
	r := NewReporter(io.Discard, io.Discard, nil, nil)
	assert.Same(t, logger, r.logger)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Current load average 2.37 exceeds 1.00", Summary(2.37, 1))
	assert.Equal(t, "Current load average 10.01 exceeds 3.50", Summary(10.005001, 3.5))
}

func TestExceeds(t *testing.T) {
	assert.True(t, Exceeds(1.01, 1))
	assert.False(t, Exceeds(1, 1))
	assert.False(t, Exceeds(0.99, 1))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "quiet", Quiet.String())
	assert.Equal(t, "reported", Reported.String())
	assert.Equal(t, "helper failed", HelperFailed.String())
	assert.Equal(t, "outcome(7)", Outcome(7).String())
}
