// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ik5/audmood/dsp"
	"github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if got, want := cfg.Analysis.Engine(), dsp.DefaultConfig(); got != want {
		t.Errorf("Engine = %+v, want %+v", got, want)
	}
	if cfg.Analysis.SampleRate != 0 {
		t.Errorf("SampleRate = %d, want 0", cfg.Analysis.SampleRate)
	}
	if cfg.Analysis.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Analysis.Workers)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	v := New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(strings.NewReader(`
log_level: debug
analysis:
  sample_rate: 22050
  frame_size: 1024
  hop_size: 256
  workers: 3
`))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Analysis{SampleRate: 22050, FrameSize: 1024, HopSize: 256, BufferSize: 4096, Workers: 3}
	if cfg.Analysis != want {
		t.Errorf("Analysis = %+v, want %+v", cfg.Analysis, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		val  any
		want error
	}{
		{"log level", KeyLogLevel, "loud", ErrInvalidLogLevel},
		{"sample rate", KeySampleRate, -1, ErrInvalidSampleRate},
		{"buffer", KeyBufferSize, 0, ErrInvalidBufferSize},
		{"workers", KeyWorkers, 0, ErrInvalidWorkers},
		{"frame size", KeyFrameSize, 8, dsp.ErrInvalidFrameSize},
		{"hop size", KeyHopSize, 0, dsp.ErrInvalidHopSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := New()
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	log, err := NewLogger(Config{LogLevel: "warn"}, &out)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}

	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(out.String(), "hidden") || !strings.Contains(out.String(), "shown") {
		t.Errorf("unexpected log output %q", out.String())
	}
}
