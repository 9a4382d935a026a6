// Package export writes the last received envelope to a local artifact.
package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"inquest/internal/api"
)

type Format string

const (
	// FormatJSON serializes the full envelope.
	FormatJSON Format = "json"
	// FormatText serializes only the data payload.
	FormatText Format = "txt"
)

// Write serializes env into dir with a filename derived from the view name
// and the format's extension, and returns the written path. Both formats are
// indented structured text; the distinction is envelope-vs-payload scope.
func Write(dir, view string, format Format, env *api.Envelope) (string, error) {
	if env == nil {
		return "", errors.New("no response to export")
	}
	var b []byte
	var err error
	switch format {
	case FormatJSON:
		b, err = json.MarshalIndent(env, "", "  ")
	case FormatText:
		b, err = json.MarshalIndent(env.Data, "", "  ")
	default:
		return "", errors.New("unknown export format: " + string(format))
	}
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	path := filepath.Join(dir, view+"."+string(format))
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
