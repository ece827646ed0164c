package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
	th "github.com/desertthunder/beers/internal/testing"
)

var beers = []models.Beer{
	{ID: 1, Name: "Test IPA", Brewery: "Test Brewery", Style: "IPA", Rating: 4, Notes: "Great beer!", DateAdded: "2025-07-11"},
	{ID: 2, Name: "Plain, Lager", Brewery: "Other Brewery", DateAdded: "1/1/2024"},
}

func TestExporters(t *testing.T) {
	dates := shared.NewDateFormatter("en-US")

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(beers)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "ID,Name,Brewery,Style,Rating,Notes,Date Added\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Test IPA,Test Brewery,IPA,4,Great beer!,2025-07-11") {
			t.Errorf("CSV missing first row, got: %s", output)
		}
		if !strings.Contains(output, `2,"Plain, Lager",Other Brewery,,0,,1/1/2024`) {
			t.Errorf("CSV should quote commas, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(beers, dates)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# " + models.Title,
			"**Beers**: 2",
			"1. **Test IPA** - Test Brewery (IPA) ★★★★ (4/5) [7/11/2025]",
			"   > Great beer!",
			"2. **Plain, Lager** - Other Brewery [1/1/2024]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}

		t.Run("empty collection", func(t *testing.T) {
			data, _ := ExportToMarkdown(nil, dates)
			if !strings.Contains(string(data), models.EmptyMessage) {
				t.Errorf("expected empty message, got %s", data)
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(beers, dates)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Beers: 2") {
			t.Errorf("Text missing count, got: %s", output)
		}
		if !strings.Contains(output, "1. Test IPA - Test Brewery (4/5) (added 7/11/2025)") {
			t.Errorf("Text missing first beer, got: %s", output)
		}
		if !strings.Contains(output, "2. Plain, Lager - Other Brewery (added 1/1/2024)") {
			t.Errorf("Text missing second beer, got: %s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(beers, false)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded []models.Beer
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(decoded) != 2 || decoded[0] != beers[0] {
			t.Errorf("unexpected decoded beers %+v", decoded)
		}
		if !strings.Contains(string(data), `"dateAdded":"2025-07-11"`) {
			t.Errorf("expected stored field names, got %s", data)
		}

		empty, _ := ExportToJSON(nil, true)
		if strings.TrimSpace(string(empty)) != "[]" {
			t.Errorf("expected [], got %s", empty)
		}

		pretty, _ := ExportToJSON(beers, true)
		if !strings.Contains(string(pretty), "\n  {") {
			t.Errorf("expected indented output, got %s", pretty)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"text", FormatText},
		{"txt", FormatText},
		{" json ", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseFormat("xml"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	dates := shared.NewDateFormatter("en-US")

	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "beers."+f.Extension())

			written, err := WriteExport(beers, f, dates, path)
			if err != nil {
				t.Fatalf("WriteExport failed: %v", err)
			}
			if written != path {
				t.Errorf("expected %s, got %s", path, written)
			}

			th.AssertFileExists(t, path)
			if content := th.MustReadFile(t, path); !strings.Contains(content, "Test IPA") {
				t.Errorf("expected export to contain Test IPA, got %s", content)
			}
		})
	}

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "beers.csv")
		if _, err := WriteExport(beers, FormatCSV, dates, path); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
