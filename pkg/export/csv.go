package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/analysis"
)

// WriteRankedCSV writes a top-K centrality listing (influencers, bridges)
// as a two-column CSV.
func WriteRankedCSV(w io.Writer, scoreHeader string, rows []analysis.Ranked) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"user", scoreHeader}); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.Name, strconv.FormatFloat(r.Score, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCooperationCSV writes the per-day cooperation rate series.
func WriteCooperationCSV(w io.Writer, history []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "cooperation_rate"}); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for i, rate := range history {
		rec := []string{strconv.Itoa(i + 1), strconv.FormatFloat(rate, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
