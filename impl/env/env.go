package env

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	kenv "github.com/knadh/koanf/providers/env"
)

const (
	DefaultThreshold     = 1.0
	DefaultHelperCommand = "top -b -n 1"
	DefaultHelperLines   = 20
	DefaultLogLevel      = "warn"
	DefaultLogColor      = "auto"
)

const (
	keyThreshold     = "threshold"
	keyHelperCommand = "helper.command"
	keyHelperLines   = "helper.lines"
	keyLogLevel      = "log.level"
	keyLogColor      = "log.color"

	// only logging is tunable from environment
	envSection = "log."
)

// Settings holds runtime parameters of a single run
type Settings struct {
	Threshold     float64
	HelperCommand string
	HelperLines   int
	LogLevel      string
	LogColor      string
}

func Defaults() *Settings {
	return &Settings{
		Threshold:     DefaultThreshold,
		HelperCommand: DefaultHelperCommand,
		HelperLines:   DefaultHelperLines,
		LogLevel:      DefaultLogLevel,
		LogColor:      DefaultLogColor,
	}
}

// Load layers <prefix>_LOG_* environment variables over built-in defaults,
// empty prefix means defaults only
func Load(prefix string) (*Settings, error) {
	k := koanf.New(".")
	err := k.Load(confmap.Provider(map[string]interface{}{
		keyThreshold:     DefaultThreshold,
		keyHelperCommand: DefaultHelperCommand,
		keyHelperLines:   DefaultHelperLines,
		keyLogLevel:      DefaultLogLevel,
		keyLogColor:      DefaultLogColor,
	}, "."), nil)
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		err = k.Load(kenv.Provider(prefix+"_", ".", envKey(prefix)), nil)
		if err != nil {
			return nil, err
		}
	}
	return &Settings{
		Threshold:     k.Float64(keyThreshold),
		HelperCommand: k.String(keyHelperCommand),
		HelperLines:   k.Int(keyHelperLines),
		LogLevel:      strings.ToLower(k.String(keyLogLevel)),
		LogColor:      strings.ToLower(k.String(keyLogColor)),
	}, nil
}

// envKey maps LOADCHK_LOG_LEVEL to log.level, anything outside of log section is dropped
func envKey(prefix string) func(string) string {
	return func(s string) string {
		key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, prefix+"_")), "_", ".", -1)
		if !strings.HasPrefix(key, envSection) {
			return ""
		}
		return key
	}
}
