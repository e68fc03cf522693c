// Package report renders a collection report as monitoring plugin output.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rusenback/check-docker/internal/model"
)

// Render returns the plugin output and the exit code for the report's
// status. The output is the status word, a blank line and the metrics as
// indented JSON; with perfData it is followed by a blank line and the
// performance data after a "|".
func Render(r model.Report, perfData bool) (string, int, error) {
	summary, err := Summary(r)
	if err != nil {
		return "", model.StatusUnknown.ExitCode(), err
	}

	var b strings.Builder
	b.WriteString(r.Status.String())
	b.WriteString("\n\n")
	b.WriteString(summary)

	if perfData {
		b.WriteString("\n\n|")
		b.WriteString(strings.Join(PerformanceData(r), " "))
	}

	return b.String(), r.Status.ExitCode(), nil
}

// Summary dumps the metrics keyed by container name, keys sorted and
// indented with four spaces.
func Summary(r model.Report) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(r.ByName()); err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// PerformanceData returns one "container.metric=value;;;;" token per metric,
// in reverse discovery order: the last metric of the last container first.
func PerformanceData(r model.Report) []string {
	tokens := make([]string, 0, len(r.Containers)*7)
	for i := len(r.Containers) - 1; i >= 0; i-- {
		c := r.Containers[i]
		fields := c.Stats.Fields()
		for j := len(fields) - 1; j >= 0; j-- {
			tokens = append(tokens, fmt.Sprintf("%s.%s=%s;;;;", c.Name, fields[j].Name, fields[j].Value))
		}
	}
	return tokens
}
