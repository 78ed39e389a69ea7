// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audmood/internal/audiotest"
)

func TestReadMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 10000, func(frame, ch int) float32 {
		if ch == 0 {
			return 0.25
		}
		return 0.75
	})

	got, rate, err := ReadMono(src, 0, 333)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(got) != 10000 {
		t.Fatalf("len = %d, want 10000", len(got))
	}
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
}

func TestReadMono_KeepsSamples(t *testing.T) {
	t.Parallel()

	want := audiotest.Sine(8000, 0.5, 440, 0.8)
	got, _, err := ReadMono(audiotest.NewSliceSource(8000, want), 0, 100)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadMono_Resamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
	}{
		{"down", 44100, 16000},
		{"up", 8000, 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.from, 2, tt.from, 0.5)
			got, rate, err := ReadMono(src, tt.to, 0)
			if err != nil {
				t.Fatalf("ReadMono: %v", err)
			}
			if rate != tt.to {
				t.Errorf("rate = %d, want %d", rate, tt.to)
			}
			if diff := len(got) - tt.to; diff < -8 || diff > 8 {
				t.Errorf("len = %d, want about %d", len(got), tt.to)
			}
			for i, v := range got {
				if math.Abs(float64(v)-0.5) > 1e-4 {
					t.Fatalf("sample %d = %v, want 0.5", i, v)
				}
			}
		})
	}
}

func TestReadMono_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name string
		src  Source
		want error
	}{
		{"empty", audiotest.NewConstantSource(8000, 1, 0, 0), ErrEmptySource},
		{"bad rate", audiotest.NewConstantSource(0, 1, 10, 0), ErrInvalidRate},
		{"read error", audiotest.NewConstantSource(8000, 1, 100, 0).FailAfter(10, boom), boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := ReadMono(tt.src, 0, 0); !errors.Is(err, tt.want) {
				t.Errorf("ReadMono error = %v, want %v", err, tt.want)
			}
		})
	}
}

// stalledSource never produces data nor ends.
type stalledSource struct{}

func (stalledSource) SampleRate() int                    { return 8000 }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) BufSize() int                       { return 0 }
func (stalledSource) Close() error                       { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }

func TestReadMono_Stalled(t *testing.T) {
	t.Parallel()

	if _, _, err := ReadMono(stalledSource{}, 0, 0); !errors.Is(err, ErrEmptySource) {
		t.Errorf("ReadMono error = %v, want ErrEmptySource", err)
	}
}
