// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func writeJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeTable(w io.Writer, reports []Report) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Title", "Artist", "RMS", "ZCR", "Centroid", "BPM", "Mood"})

	for _, r := range reports {
		row := []string{r.Path, r.Song.Title, r.Song.Artist, "-", "-", "-", "-", r.Song.Mood.String()}
		if f := r.Features; f != nil {
			row[3] = strconv.FormatFloat(f.RMS, 'f', 4, 64)
			row[4] = strconv.FormatFloat(f.ZCR, 'f', 4, 64)
			row[5] = strconv.FormatFloat(f.SpectralCentroid, 'f', 0, 64)
			if f.BPM != nil {
				row[6] = strconv.FormatFloat(*f.BPM, 'f', 0, 64)
			}
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
