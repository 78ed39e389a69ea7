// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Sniffer is implemented by decoders that can recognise their container
// from the first bytes of a stream.
type Sniffer interface {
	Sniff(header []byte) bool
}

// SniffLen is the number of leading bytes Detect needs to see.
const SniffLen = 12

type entry struct {
	format string
	dec    Decoder
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Detection walks formats in registration order.
type Registry struct {
	codecs []entry

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.RWMutex{},
	}
}

// Register adds d under format, replacing any decoder already registered
// under the same key while keeping its position.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for i := range r.codecs {
		if r.codecs[i].format == format {
			r.codecs[i].dec = d
			return
		}
	}
	r.codecs = append(r.codecs, entry{format: format, dec: d})
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, e := range r.codecs {
		if e.format == format {
			return e.dec, true
		}
	}
	return nil, false
}

// Detect returns the first registered format whose decoder recognises header.
func (r *Registry) Detect(header []byte) (string, Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, e := range r.codecs {
		s, ok := e.dec.(Sniffer)
		if ok && s.Sniff(header) {
			return e.format, e.dec, true
		}
	}
	return "", nil, false
}

// Formats lists the registered format keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for _, e := range r.codecs {
		out = append(out, e.format)
	}
	return out
}
