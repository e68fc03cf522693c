package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	units "github.com/docker/go-units"

	"github.com/rusenback/check-docker/internal/model"
)

var tableHeaders = []string{"CONTAINER", "CPU %", "MEM %", "MEM USAGE", "NET I/O", "BLOCK I/O"}

// RenderTable renderöi raportin taulukkona interaktiiviseen käyttöön.
// The exit code follows the report's status like Render.
func RenderTable(r model.Report) (string, int) {
	containers := make([]model.ContainerStats, len(r.Containers))
	copy(containers, r.Containers)
	sort.Slice(containers, func(i, j int) bool { return containers[i].Name < containers[j].Name })

	rows := make([][]string, 0, len(containers))
	for _, c := range containers {
		s := c.Stats
		rows = append(rows, []string{
			c.Name,
			fmt.Sprintf("%.2f%%", float64(s.CPUPercent)),
			fmt.Sprintf("%.2f%%", float64(s.MemoryPercent)),
			units.BytesSize(float64(s.MemoryUsage)),
			units.HumanSize(float64(s.NetworkInput)) + " / " + units.HumanSize(float64(s.NetworkOutput)),
			units.HumanSize(float64(s.BlockInput)) + " / " + units.HumanSize(float64(s.BlockOutput)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	status := okStyle
	if r.Status != model.StatusOK {
		status = failStyle
	}

	var b strings.Builder
	b.WriteString(status.Render(r.Status.String()))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d running containers", len(containers))))
	b.WriteString("\n")
	b.WriteString(t.String())

	return b.String(), r.Status.ExitCode()
}
