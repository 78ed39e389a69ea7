// SPDX-License-Identifier: EPL-2.0

package mood

import (
	"fmt"
	"strings"

	"github.com/ik5/audmood/features"
)

// ScoreTable accumulates points per label, indexed in Labels() order.
type ScoreTable [len(labels)]int

// Get returns the score of l, 0 for Unknown or foreign labels.
func (t *ScoreTable) Get(l Label) int {
	if i := l.index(); i >= 0 {
		return t[i]
	}
	return 0
}

// Add credits l with points. Labels outside the classifier set are ignored.
func (t *ScoreTable) Add(l Label, points int) {
	if i := l.index(); i >= 0 {
		t[i] += points
	}
}

// Max returns the highest single score.
func (t *ScoreTable) Max() int {
	best := t[0]
	for _, v := range t[1:] {
		best = max(best, v)
	}
	return best
}

// Map returns the table keyed by label.
func (t *ScoreTable) Map() map[Label]int {
	out := make(map[Label]int, len(labels))
	for i, l := range labels {
		out[l] = t[i]
	}
	return out
}

func (t *ScoreTable) String() string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%d", l, t[i])
	}
	return strings.Join(parts, " ")
}

// Decide picks the winning label; see the package documentation for the
// order of the rules.
func (t *ScoreTable) Decide() Label {
	top := t.Max()
	if t.Get(Sad)+t.Get(Angry) > top {
		return Sad
	}

	var candidates []Label
	for i, l := range labels {
		if t[i] == top {
			candidates = append(candidates, l)
		}
	}

	if len(candidates) > 1 && contains(candidates, Sad) && contains(candidates, Angry) {
		return Sad
	}
	return candidates[0]
}

func contains(ls []Label, want Label) bool {
	for _, l := range ls {
		if l == want {
			return true
		}
	}
	return false
}

// Score runs every feature through its bands.
func Score(f features.FeatureSet) ScoreTable {
	var t ScoreTable
	if f.BPM != nil {
		tempoBands.vote(&t, *f.BPM)
	}
	energyBands.vote(&t, f.RMS)
	brightnessBands.vote(&t, f.SpectralCentroid)
	roughnessBands.vote(&t, f.ZCR)
	return t
}

// Classify scores f and decides its label.
func Classify(f features.FeatureSet) Label {
	t := Score(f)
	return t.Decide()
}
