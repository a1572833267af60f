package shell

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

// Snapshot shows the busiest processes using external process-listing utility
type Snapshot struct {
	Shell   string
	Command string
	Lines   int // output is truncated to first Lines lines, 0 disables truncation
}

func NewSnapshot(command string, lines int) *Snapshot {
	return &Snapshot{
		Shell:   DefaultShell,
		Command: command,
		Lines:   lines,
	}
}

func (s *Snapshot) Pipeline() string {
	if s.Lines <= 0 {
		return s.Command
	}
	return fmt.Sprintf("%s | head -n %d", s.Command, s.Lines)
}

// Run relays helper output verbatim and blocks until it exits, there is no timeout
func (s *Snapshot) Run(stdout, stderr io.Writer) error {
	l := logger.Sugar()
	pipeline := s.Pipeline()
	l.Debugw("[Snapshot.Run]", "shell", s.Shell, "pipeline", pipeline)
	err := RelayCmd(s.Shell, pipeline, nil, stdout, stderr)
	if err != nil {
		l.Debugw("[Snapshot.Run]", "err", err)
		return tberrors.ErrSnapshotFailed{Command: pipeline, Err: err}
	}
	return nil
}
