package load

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	psload "github.com/shirou/gopsutil/v4/load"
	"github.com/wiedzmin/loadchk/impl"
	"github.com/wiedzmin/loadchk/impl/tberrors"
	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	logger = impl.NewLogger()
}

var sampleKeys = []string{"load1", "load5", "load15"}

// Sample holds up to three load averages, for 1, 5 and 15 minutes respectively
type Sample []float64

// One returns 1-minute load average
func (s Sample) One() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func (s Sample) String() string {
	fields := make(map[string]float64, len(s))
	for i, v := range s {
		if i >= len(sampleKeys) {
			break
		}
		fields[sampleKeys[i]] = v
	}
	result, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(fields)
	if err != nil {
		return fmt.Sprint([]float64(s))
	}
	return result
}

func (s Sample) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("no samples")
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid %s value %v", sampleKeys[i], v)
		}
	}
	return nil
}

type Sampler interface {
	Sample() (Sample, error)
}

type SamplerFunc func() (Sample, error)

func (f SamplerFunc) Sample() (Sample, error) {
	return f()
}

// System samples load averages maintained by the OS kernel
type System struct {
	avg func() (*psload.AvgStat, error)
}

func NewSystem() *System {
	return &System{avg: psload.Avg}
}

// Sample makes exactly one attempt, any failure is reported as tberrors.ErrLoadUnavailable
func (s *System) Sample() (Sample, error) {
	l := logger.Sugar()
	stat, err := s.avg()
	if err != nil {
		return nil, tberrors.ErrLoadUnavailable{Err: err}
	}
	if stat == nil {
		return nil, tberrors.ErrLoadUnavailable{}
	}
	result := Sample{stat.Load1, stat.Load5, stat.Load15}
	if err := result.validate(); err != nil {
		return nil, tberrors.ErrLoadUnavailable{Err: err}
	}
	l.Debugw("[System.Sample]", "sample", result)
	return result, nil
}
