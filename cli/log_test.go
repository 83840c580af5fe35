package cli

import (
	"io"
	"os"
	"testing"

	"github.com/ardnew/tictoc/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	tests := []struct {
		name   string
		args   []string
		want   logConfig
		format log.Format
		level  log.Level
	}{
		{
			name:   "separate_values",
			args:   []string{"demo", "--log-level", "debug", "--log-format", "text"},
			want:   logConfig{Level: "debug", Format: "text"},
			format: log.FormatText,
			level:  log.LevelDebug,
		},
		{
			name:   "assigned_values",
			args:   []string{"--log-level=trace", "--log-format=json", "--log-caller"},
			want:   logConfig{Level: "trace", Format: "json", Caller: true},
			format: log.FormatJSON,
			level:  log.LevelTrace,
		},
		{
			name:   "negated_booleans",
			args:   []string{"--no-log-pretty", "--log-caller=false", "--log-level", "warn"},
			want:   logConfig{Level: "warn"},
			format: log.DefaultFormat,
			level:  log.LevelWarn,
		},
		{
			name:   "negated_assigned",
			args:   []string{"--no-log-pretty=false", "--log-level", "error"},
			want:   logConfig{Level: "error", Pretty: true},
			format: log.DefaultFormat,
			level:  log.LevelError,
		},
		{
			name:   "missing_value_not_consumed",
			args:   []string{"--log-level", "--limit", "3"},
			want:   logConfig{},
			format: log.DefaultFormat,
			level:  log.DefaultLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.Config(log.WithDefaults(io.Discard))

			var got logConfig
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan() = %+v, want %+v", got, tt.want)
			}

			if f := log.Default().Format(); f != tt.format {
				t.Errorf("logger format = %v, want %v", f, tt.format)
			}

			if l := log.Default().Level(); l != tt.level {
				t.Errorf("logger level = %v, want %v", l, tt.level)
			}
		})
	}
}

func TestLogConfig_Vars(t *testing.T) {
	var f logConfig

	if got := f.vars()["logLevelEnum"]; got != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", got)
	}
}
