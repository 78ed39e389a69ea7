// SPDX-License-Identifier: EPL-2.0

package mood

// Label is a mood name as stored alongside a song.
type Label string

const (
	Angry     Label = "angry"
	Sad       Label = "sad"
	Happy     Label = "happy"
	Surprised Label = "surprised"
	Neutral   Label = "neutral"

	// Unknown marks a song whose audio could not be analysed. The
	// classifier itself never returns it.
	Unknown Label = "unknown"
)

// labels is the tie-break priority order.
var labels = [...]Label{Angry, Sad, Happy, Surprised, Neutral}

// Labels returns the five classifier labels in tie-break order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels[:])
	return out
}

func (l Label) String() string { return string(l) }

// Valid reports whether l is one of the five classifier labels.
func (l Label) Valid() bool {
	return l.index() >= 0
}

func (l Label) index() int {
	for i, c := range labels {
		if c == l {
			return i
		}
	}
	return -1
}

// Parse accepts any of the five classifier labels or Unknown.
func Parse(s string) (Label, bool) {
	l := Label(s)
	if l.Valid() || l == Unknown {
		return l, true
	}
	return Unknown, false
}
