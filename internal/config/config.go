// SPDX-License-Identifier: EPL-2.0

// Package config loads audmood settings from flags, environment and an
// optional YAML file through viper.
package config

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ik5/audmood/audio"
	"github.com/ik5/audmood/dsp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AUDMOOD_ANALYSIS_WORKERS.
const EnvPrefix = "AUDMOOD"

// Setting keys. Nested keys map to YAML sections.
const (
	KeyLogLevel   = "log_level"
	KeySampleRate = "analysis.sample_rate"
	KeyFrameSize  = "analysis.frame_size"
	KeyHopSize    = "analysis.hop_size"
	KeyBufferSize = "analysis.buffer_size"
	KeyWorkers    = "analysis.workers"
)

// Analysis tunes the decode and feature extraction stages.
type Analysis struct {
	// SampleRate resamples decoded audio before analysis; 0 keeps the
	// native rate.
	SampleRate int
	FrameSize  int
	HopSize    int
	BufferSize int
	Workers    int
}

type Config struct {
	LogLevel string
	Analysis Analysis
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	engine := dsp.DefaultConfig()

	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeySampleRate, 0)
	v.SetDefault(KeyFrameSize, engine.FrameSize)
	v.SetDefault(KeyHopSize, engine.HopSize)
	v.SetDefault(KeyBufferSize, audio.DefaultBufSize)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
}

// Load reads the current settings out of v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel: v.GetString(KeyLogLevel),
		Analysis: Analysis{
			SampleRate: v.GetInt(KeySampleRate),
			FrameSize:  v.GetInt(KeyFrameSize),
			HopSize:    v.GetInt(KeyHopSize),
			BufferSize: v.GetInt(KeyBufferSize),
			Workers:    v.GetInt(KeyWorkers),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	a := c.Analysis
	if a.SampleRate < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, a.SampleRate)
	}
	if a.BufferSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBufferSize, a.BufferSize)
	}
	if a.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, a.Workers)
	}
	if err := a.Engine().Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	return nil
}

// Engine returns the STFT frame layout.
func (a Analysis) Engine() dsp.Config {
	return dsp.Config{
		FrameSize: a.FrameSize,
		HopSize:   a.HopSize,
	}
}

// NewLogger builds a text logger writing to out at the configured level.
func NewLogger(c Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log, nil
}
