// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"
	"os"
	"sync"

	"github.com/ik5/audmood"
	"github.com/ik5/audmood/features"
)

// Report is one analysed file as printed by the analyze command.
type Report struct {
	Path     string               `json:"path"`
	Format   string               `json:"format,omitempty"`
	Seconds  float64              `json:"seconds,omitempty"`
	Song     audmood.SongInfo     `json:"song"`
	Features *features.FeatureSet `json:"features,omitempty"`
	Error    string               `json:"error,omitempty"`
}

type job struct {
	index int
	path  string
}

// analyzeAll runs the analyzer over paths on a fixed number of workers. The
// reports come back in the order of paths.
func analyzeAll(an *audmood.Analyzer, paths []string, workers int, title, artist string) []Report {
	workers = max(1, min(workers, len(paths)))
	reports := make([]Report, len(paths))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				reports[j.index] = analyzeOne(an, j.path, title, artist)
			}
		}()
	}

	for i, p := range paths {
		jobs <- job{index: i, path: p}
	}
	close(jobs)
	wg.Wait()

	return reports
}

func analyzeOne(an *audmood.Analyzer, path, title, artist string) Report {
	rep := Report{Path: path}

	f, err := os.Open(path)
	if err != nil {
		rep.Song = audmood.ReadSongInfo(path, nil, title, artist)
		rep.Error = err.Error()
		return rep
	}
	defer f.Close()

	rep.Song = audmood.ReadSongInfo(path, f, title, artist)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		rep.Error = err.Error()
		return rep
	}

	res := an.Analyze(path, f)
	rep.Format = res.Format
	rep.Seconds = res.Duration.Seconds()
	rep.Song.Mood = res.Mood
	rep.Features = res.Features
	if res.Err != nil {
		rep.Error = res.Err.Error()
	}
	return rep
}
