package export

import (
	"encoding/json"
	"fmt"
	"io"

	reportexport "github.com/de-tools/permit-atlas/pkg/export"
	"github.com/de-tools/permit-atlas/pkg/models/api"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q, expected one of %v", s, Formats)
}

// Render writes v in the given format. Table and CSV output only apply to reports.
func Render(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case FormatTable, FormatCSV:
		report, ok := v.(api.Report)
		if !ok {
			return fmt.Errorf("%s output is only available for reports", format)
		}
		if format == FormatCSV {
			return reportexport.WriteCSV(w, report)
		}
		return NewReporter(w).Handle(report)
	}
	return fmt.Errorf("unsupported format %q", format)
}
