// SPDX-License-Identifier: EPL-2.0

package audmood

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ik5/audmood/audio"
	"github.com/ik5/audmood/dsp"
	"github.com/ik5/audmood/features"
	"github.com/ik5/audmood/formats"
	"github.com/ik5/audmood/mood"
	"github.com/sirupsen/logrus"
)

// Analyzer runs the decode, extract and classify pipeline. It holds no
// per-call state and is safe for concurrent use.
type Analyzer struct {
	registry   *audio.Registry
	engine     dsp.Engine
	log        logrus.FieldLogger
	sampleRate int
	bufSize    int
}

type Option func(*Analyzer)

// WithRegistry replaces the decoders from formats.NewRegistry.
func WithRegistry(reg *audio.Registry) Option {
	return func(a *Analyzer) { a.registry = reg }
}

// WithEngine replaces the shared dsp.Default engine.
func WithEngine(eng dsp.Engine) Option {
	return func(a *Analyzer) { a.engine = eng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithSampleRate resamples decoded audio to rate before analysis. Zero keeps
// the native rate.
func WithSampleRate(rate int) Option {
	return func(a *Analyzer) { a.sampleRate = rate }
}

// WithBufferSize sets the decode read buffer, in samples.
func WithBufferSize(n int) Option {
	return func(a *Analyzer) { a.bufSize = n }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		bufSize: audio.DefaultBufSize,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.registry == nil {
		a.registry = formats.NewRegistry()
	}
	if a.engine == nil {
		a.engine = dsp.Default()
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	return a
}

// Registry returns the decoders the analyzer detects formats with.
func (a *Analyzer) Registry() *audio.Registry { return a.registry }

// Result is the outcome of one analysis. Err is nil on success; on failure
// Mood is mood.Unknown and the fields past the failing stage are empty.
type Result struct {
	Name     string               `json:"name"`
	Format   string               `json:"format,omitempty"`
	Duration time.Duration        `json:"duration,omitempty"`
	Features *features.FeatureSet `json:"features,omitempty"`
	Scores   *mood.ScoreTable     `json:"-"`
	Mood     mood.Label           `json:"mood"`
	Err      error                `json:"-"`
}

// AnalyzeAudioMood returns the mood of the audio in r. It never fails: any
// decode or analysis error yields mood.Unknown.
func (a *Analyzer) AnalyzeAudioMood(name string, r io.Reader) mood.Label {
	return a.Analyze(name, r).Mood
}

// AnalyzeFile opens path and analyses it.
func (a *Analyzer) AnalyzeFile(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return a.fail(Result{Name: path}, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	defer f.Close()

	return a.Analyze(path, f)
}

// Analyze decodes r, extracts its features and classifies them. name is only
// used for the extension fallback when the header is not recognised, and
// for logging.
func (a *Analyzer) Analyze(name string, r io.Reader) (res Result) {
	res = Result{Name: name, Mood: mood.Unknown}

	defer func() {
		if p := recover(); p != nil {
			res = a.fail(res, fmt.Errorf("%w: %v", ErrAnalysisPanic, p))
		}
	}()

	samples, format, err := a.decode(name, r)
	res.Format = format
	if err != nil {
		return a.fail(res, err)
	}
	res.Duration = time.Duration(float64(len(samples.Data)) / float64(samples.SampleRate) * float64(time.Second))

	fs, err := features.Extract(samples, a.engine)
	if err != nil {
		return a.fail(res, fmt.Errorf("%w: %w", ErrFeatures, err))
	}
	res.Features = &fs

	scores := mood.Score(fs)
	res.Scores = &scores
	res.Mood = scores.Decide()

	fields := logrus.Fields{
		"file":     name,
		"format":   format,
		"rms":      fs.RMS,
		"zcr":      fs.ZCR,
		"centroid": fs.SpectralCentroid,
		"scores":   scores.String(),
		"mood":     res.Mood,
	}
	if fs.BPM != nil {
		fields["bpm"] = *fs.BPM
	}
	a.log.WithFields(fields).Debug("audio analysed")

	return res
}

func (a *Analyzer) fail(res Result, err error) Result {
	res.Mood = mood.Unknown
	res.Err = err
	a.log.WithError(err).WithField("file", res.Name).Warn("audio analysis failed, mood unknown")
	return res
}

func (a *Analyzer) decode(name string, r io.Reader) (features.Samples, string, error) {
	body, header, err := peek(r, audio.SniffLen)
	if err != nil {
		return features.Samples{}, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	format, dec, ok := a.registry.Detect(header)
	if !ok {
		format, dec, ok = a.byExtension(name)
	}
	if !ok {
		return features.Samples{}, "", fmt.Errorf("%w: %w", ErrDecode, ErrUnknownFormat)
	}

	src, err := dec.Decode(body)
	if err != nil {
		return features.Samples{}, format, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	defer src.Close()

	data, rate, err := audio.ReadMono(src, a.sampleRate, a.bufSize)
	if err != nil {
		return features.Samples{}, format, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	return features.Samples{Data: data, SampleRate: rate}, format, nil
}

func (a *Analyzer) byExtension(name string) (string, audio.Decoder, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return "", nil, false
	}
	if alias, ok := formats.Aliases[ext]; ok {
		ext = alias
	}
	dec, ok := a.registry.Get(ext)
	return ext, dec, ok
}

// peek returns the first n bytes of r and a reader that still yields the
// whole stream. Seekable readers are rewound so decoders that need to seek
// keep that ability.
func peek(r io.Reader, n int) (io.Reader, []byte, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err == nil {
			header := make([]byte, n)
			m, err := io.ReadFull(rs, header)
			if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
				return nil, nil, err
			}
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return nil, nil, err
			}
			return rs, header[:m], nil
		}
	}

	br := bufio.NewReader(r)
	header, err := br.Peek(n)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, nil, err
	}
	return br, bytes.Clone(header), nil
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer { return New() })

// AnalyzeAudioMood runs the shared default Analyzer over r.
func AnalyzeAudioMood(name string, r io.Reader) mood.Label {
	return defaultAnalyzer().AnalyzeAudioMood(name, r)
}

// Prepare resolves the metadata stored for an upload: title and artist as
// ReadSongInfo does, plus the analysed mood.
func (a *Analyzer) Prepare(name string, r io.ReadSeeker, title, artist string) SongInfo {
	info := ReadSongInfo(name, r, title, artist)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		a.log.WithError(err).WithField("file", name).Warn("rewind after tag read failed")
		return info
	}
	info.Mood = a.AnalyzeAudioMood(name, r)
	return info
}
