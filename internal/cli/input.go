package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/loglens/loglens/internal/eventlog"
)

// Input formats accepted by the log-reading commands.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatXES    = "xes"
	FormatSQLite = "sqlite"
)

// ValidInputFormats defines the allowed --input values.
var ValidInputFormats = []string{FormatAuto, FormatText, FormatXES, FormatSQLite}

// InputOptions select how an event log is read.
type InputOptions struct {
	// Format is one of ValidInputFormats; "auto" detects from the file
	// extension and defaults to text.
	Format string

	// Query overrides the SQLite event query; empty means
	// eventlog.DefaultEventQuery.
	Query string
}

// detectFormat resolves "auto" from the file extension. Stdin ("-") is
// always text; SQLite cannot be streamed.
func detectFormat(path, format string) string {
	if format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xes":
		return FormatXES
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatText
	}
}

// ReadLog loads an event log from path in the requested format. The
// path "-" reads text or XES from stdin.
func ReadLog(ctx context.Context, path string, opts InputOptions) (*eventlog.Log, error) {
	format := detectFormat(path, opts.Format)

	switch format {
	case FormatSQLite:
		if path == "-" {
			return nil, fmt.Errorf("sqlite input cannot be read from stdin")
		}
		query := opts.Query
		if query == "" {
			query = eventlog.DefaultEventQuery
		}
		return eventlog.LoadSQLite(ctx, path, query)

	case FormatText, FormatXES:
		content, err := readAll(path)
		if err != nil {
			return nil, err
		}
		if format == FormatXES {
			return eventlog.ParseXES(content)
		}
		return eventlog.ParseText(content)

	default:
		return nil, fmt.Errorf("invalid input format %q: must be one of %v", opts.Format, ValidInputFormats)
	}
}

func readAll(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
