package stats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the header row of [WriteCSV]. The first cell is preceded by a
// UTF-8 byte order mark when written.
var CSVHeader = []string{
	"Extension Id",
	"Target Extension Point Id",
	"Target Extension Point Present",
	"Number Of Contributions",
	"Code Type",
	"From Studio",
}

const bom = "\ufeff"

type document struct {
	Stats []ContributionStat `json:"stats"`
}

// WriteJSON writes {"stats": [...]}, indented when pretty is set.
func WriteJSON(w io.Writer, stats []ContributionStat, pretty bool) error {
	if stats == nil {
		stats = []ContributionStat{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(document{Stats: stats}); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return nil
}

// WriteCSV writes the header row and one record per stat, with RFC 4180
// quoting and CRLF line endings. The header is written even without stats.
func WriteCSV(w io.Writer, stats []ContributionStat) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := append([]string{bom + CSVHeader[0]}, CSVHeader[1:]...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	for _, s := range stats {
		record := []string{
			s.ExtensionID,
			s.TargetExtensionPointID,
			strconv.FormatBool(s.TargetExtensionPointPresent),
			strconv.FormatInt(s.NumberOfContributions, 10),
			string(s.CodeType),
			strconv.FormatBool(s.FromStudio),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return nil
}
