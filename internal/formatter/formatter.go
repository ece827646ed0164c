// package formatter provides functions to export the beer collection to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists every supported [Format].
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON}

// ParseFormat resolves a format name. "md" and "txt" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, name)
}

// Extension returns the file extension used for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	}
	return string(f)
}

// Export renders beers in format f. Dates are rendered with dates.
func Export(beers []models.Beer, f Format, dates *shared.DateFormatter) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(beers)
	case FormatMarkdown:
		return ExportToMarkdown(beers, dates)
	case FormatText:
		return ExportToText(beers, dates)
	case FormatJSON:
		return ExportToJSON(beers, true)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, f)
}

// ExportToCSV converts the collection to CSV with columns: ID, Name, Brewery, Style, Rating, Notes, Date Added
//
// Dates are written as stored so the file can be re-imported.
func ExportToCSV(beers []models.Beer) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Brewery", "Style", "Rating", "Notes", "Date Added"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, beer := range beers {
		record := []string{
			strconv.Itoa(beer.ID),
			beer.Name,
			beer.Brewery,
			beer.Style,
			strconv.Itoa(beer.Rating),
			beer.Notes,
			beer.DateAdded,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the collection to a Markdown document with one list entry per beer
func ExportToMarkdown(beers []models.Beer, dates *shared.DateFormatter) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", models.Title))
	buf.WriteString(fmt.Sprintf("**Beers**: %d\n\n", len(beers)))

	if len(beers) == 0 {
		buf.WriteString(fmt.Sprintf("_%s_\n", models.EmptyMessage))
		return buf.Bytes(), nil
	}

	buf.WriteString("## Collection\n\n")
	for i, beer := range beers {
		stylePart := ""
		if beer.Style != "" {
			stylePart = fmt.Sprintf(" (%s)", beer.Style)
		}
		ratingPart := ""
		if beer.HasRating() {
			ratingPart = fmt.Sprintf(" %s %s", strings.Repeat("★", beer.Rating), models.RatingText(beer.Rating))
		}
		buf.WriteString(fmt.Sprintf("%d. **%s** - %s%s%s [%s]\n", i+1, beer.Name, beer.Brewery, stylePart, ratingPart, dates.Format(beer.DateAdded)))
		if beer.Notes != "" {
			buf.WriteString(fmt.Sprintf("   > %s\n", strings.Join(strings.Fields(beer.Notes), " ")))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts the collection to plain text format
func ExportToText(beers []models.Beer, dates *shared.DateFormatter) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Beers: %d\n\n", len(beers)))

	for i, beer := range beers {
		buf.WriteString(fmt.Sprintf("%d. %s - %s", i+1, beer.Name, beer.Brewery))
		if text := models.RatingText(beer.Rating); text != "" {
			buf.WriteString(" " + text)
		}
		buf.WriteString(fmt.Sprintf(" (added %s)\n", dates.Format(beer.DateAdded)))
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes the collection in its stored JSON shape, indented when pretty is set.
func ExportToJSON(beers []models.Beer, pretty bool) ([]byte, error) {
	if beers == nil {
		beers = []models.Beer{}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(beers, "", "  ")
	} else {
		data, err = json.Marshal(beers)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode beers: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteExport renders beers in format f and writes them to path.
//
// Defaults to beers.{ext} as the filename.
func WriteExport(beers []models.Beer, f Format, dates *shared.DateFormatter, path string) (string, error) {
	if path == "" {
		path = "beers." + f.Extension()
	}

	data, err := Export(beers, f, dates)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}
