// SPDX-License-Identifier: EPL-2.0

package mood

import "math"

type vote struct {
	label  Label
	points int
}

// band credits its votes to any value >= min.
type band struct {
	min   float64
	votes []vote
}

// bands are ordered from the highest min down; the last band catches
// everything below the one before it.
type bands []band

func (bs bands) vote(t *ScoreTable, v float64) {
	if math.IsNaN(v) {
		return
	}
	for i, b := range bs {
		if v >= b.min || i == len(bs)-1 {
			for _, vt := range b.votes {
				t.Add(vt.label, vt.points)
			}
			return
		}
	}
}

var tempoBands = bands{
	{min: 160, votes: []vote{{Angry, 1}}},
	{min: 130, votes: []vote{{Surprised, 2}}},
	{min: 100, votes: []vote{{Happy, 3}}},
	{min: 75, votes: []vote{{Neutral, 3}}},
	{votes: []vote{{Sad, 3}}},
}

var energyBands = bands{
	{min: 0.18, votes: []vote{{Angry, 1}}},
	{min: 0.13, votes: []vote{{Surprised, 2}}},
	{min: 0.09, votes: []vote{{Happy, 3}}},
	{min: 0.06, votes: []vote{{Neutral, 3}}},
	{votes: []vote{{Sad, 3}}},
}

var brightnessBands = bands{
	{min: 2700, votes: []vote{{Angry, 1}}},
	{min: 2100, votes: []vote{{Surprised, 2}}},
	{min: 1600, votes: []vote{{Happy, 3}}},
	{min: 1200, votes: []vote{{Neutral, 3}}},
	{votes: []vote{{Sad, 3}}},
}

var roughnessBands = bands{
	{min: 0.13, votes: []vote{{Angry, 1}}},
	{min: 0.09, votes: []vote{{Surprised, 1}, {Happy, 1}}},
	{min: 0.06, votes: []vote{{Neutral, 1}}},
	{votes: []vote{{Sad, 1}}},
}
