package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
)

type ExportData struct {
	Timestamp   string `json:"timestamp"`
	RequestType string `json:"request_type"`
	Endpoint    string `json:"endpoint"`
	Data        any    `json:"data"`
}

func sanitizeString(s string) string {
	if !utf8.ValidString(s) {
		return strings.ToValidUTF8(s, "?")
	}
	return s
}

func sanitizeValue(data any) any {
	switch v := data.(type) {
	case string:
		return sanitizeString(v)
	case map[string]any:
		result := make(map[string]any)
		for key, value := range v {
			result[sanitizeString(key)] = sanitizeValue(value)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, value := range v {
			result[i] = sanitizeValue(value)
		}
		return result
	default:
		return v
	}
}

// ExportToJSON writes a session artifact (history, results) into exports/.
func ExportToJSON(filename string, data any, requestType, endpoint string) {
	exportDir := "exports"
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		PrintError("Failed to create exports directory: " + err.Error())
		return
	}

	path := filepath.Join(exportDir, filename)

	exportData := ExportData{
		Timestamp:   time.Now().Format(time.RFC3339),
		RequestType: requestType,
		Endpoint:    endpoint,
		Data:        sanitizeValue(data),
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(exportData); err != nil {
		PrintError("Failed to marshal JSON: " + err.Error())
		return
	}

	if err := os.WriteFile(path, []byte(strings.TrimSpace(buf.String())), 0644); err != nil {
		PrintError("Failed to write JSON file: " + err.Error())
		return
	}

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)
	green.Printf("✓ JSON exported successfully: %s\n", filename)
	cyan.Printf("📁 File location: %s\n", path)
}
