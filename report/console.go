package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hupe1980/vecbench"
)

// Theme defines the color scheme for console output.
type Theme struct {
	Primary lipgloss.Color // Accent color for titles and labels
	Dim     lipgloss.Color // De-emphasized metadata and details
	Pass    lipgloss.Color // Passing checks
	Fail    lipgloss.Color // Failing checks
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Pass:    lipgloss.Color("#3fb950"),
	Fail:    lipgloss.Color("#f85149"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Dim   lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Bar   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Label: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Dim:   lipgloss.NewStyle().Foreground(t.Dim),
		Pass:  lipgloss.NewStyle().Foreground(t.Pass),
		Fail:  lipgloss.NewStyle().Bold(true).Foreground(t.Fail),
		Bar:   lipgloss.NewStyle().Foreground(t.Primary),
	}
}

const (
	consoleWidth = 72
	barWidth     = 24
)

// Console buffers records and renders them as styled terminal sections when
// Finish is called: a run banner, one table per operation kind with latency
// bars, derived speedup / throughput-multiple / bloat-ratio lines, and the
// compliance findings. Not safe for concurrent use.
type Console struct {
	w      io.Writer
	info   vecbench.RunInfo
	styles Styles

	metrics    []vecbench.MetricRecord
	compliance []vecbench.ComplianceRecord
}

// ConsoleOption configures the console sink.
type ConsoleOption func(*Console)

// WithTheme overrides the default color theme.
func WithTheme(t Theme) ConsoleOption {
	return func(c *Console) {
		c.styles = NewStyles(t)
	}
}

// NewConsole creates a console sink rendering to w.
func NewConsole(w io.Writer, info vecbench.RunInfo, optFns ...ConsoleOption) *Console {
	c := &Console{
		w:      w,
		info:   info,
		styles: NewStyles(DefaultTheme),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(c)
		}
	}
	return c
}

// RecordMetric implements vecbench.Reporter.
func (c *Console) RecordMetric(m vecbench.MetricRecord) {
	c.metrics = append(c.metrics, m)
}

// RecordCompliance implements vecbench.Reporter.
func (c *Console) RecordCompliance(r vecbench.ComplianceRecord) {
	c.compliance = append(c.compliance, r)
}

// Finish renders everything received so far in one write.
func (c *Console) Finish() error {
	var b strings.Builder

	c.renderBanner(&b)
	c.renderLatency(&b)
	c.renderThroughput(&b)
	c.renderMemory(&b)
	c.renderPrecision(&b)
	c.renderCompliance(&b)

	_, err := io.WriteString(c.w, b.String())
	return err
}

func (c *Console) renderBanner(b *strings.Builder) {
	cfg := c.info.Config

	b.WriteString(c.styles.Title.Render("vecbench") + "\n")
	b.WriteString(c.styles.Dim.Render(fmt.Sprintf("run %s | started %s",
		c.info.RunID, c.info.StartedAt.Format(time.RFC3339))) + "\n")
	b.WriteString(c.styles.Dim.Render(fmt.Sprintf("%d vectors x %d dims | %d iterations | element width %dB | %s | %s",
		cfg.VectorCount, cfg.Dimension, cfg.Iterations, cfg.ElementWidth, c.info.ISA, c.info.GoVersion)) + "\n")
}

func (c *Console) section(b *strings.Builder, label string) {
	text := c.styles.Label.Render(label)
	rule := strings.Repeat("─", max(0, consoleWidth-lipgloss.Width(text)-3))
	b.WriteString("\n" + c.styles.Dim.Render("─ ") + text + " " + c.styles.Dim.Render(rule) + "\n")
}

func (c *Console) renderLatency(b *strings.Builder) {
	rows := c.renderRows(b, "Latency", vecbench.OpLatency, true)

	for _, name := range orderedNames(rows) {
		std, okS := find(rows, vecbench.ArchStandard, name)
		zc, okZ := find(rows, vecbench.ArchZeroCopy, name)
		if okS && okZ && zc.Value > 0 {
			c.summary(b, fmt.Sprintf("speedup: %.1fx (%s)", std.Value/zc.Value, name))
		}
	}
}

func (c *Console) renderThroughput(b *strings.Builder) {
	rows := c.renderRows(b, "Throughput", vecbench.OpThroughput, true)

	for _, name := range orderedNames(rows) {
		std, okS := find(rows, vecbench.ArchStandard, name)
		zc, okZ := find(rows, vecbench.ArchZeroCopy, name)
		if okS && okZ && std.Value > 0 {
			c.summary(b, fmt.Sprintf("throughput multiple: %.1fx (%s)", zc.Value/std.Value, name))
		}
	}
}

func (c *Console) renderMemory(b *strings.Builder) {
	rows := c.renderRows(b, "Memory", vecbench.OpMemory, false)

	loose, okL := find(rows, vecbench.ArchStandard, "resident")
	packed, okP := find(rows, vecbench.ArchZeroCopy, "resident")
	if okL && okP && packed.Value > 0 {
		c.summary(b, fmt.Sprintf("bloat ratio: %.2fx (loose resident / packed resident)", loose.Value/packed.Value))
	}
}

func (c *Console) renderPrecision(b *strings.Builder) {
	c.renderRows(b, "Precision", vecbench.OpPrecision, false)
}

func (c *Console) renderRows(b *strings.Builder, label string, kind vecbench.OperationKind, withBars bool) []vecbench.MetricRecord {
	rows := c.metricsOf(kind)
	if len(rows) == 0 {
		return nil
	}

	c.section(b, label)

	maxVal := 0.0
	for _, m := range rows {
		if m.Value > maxVal {
			maxVal = m.Value
		}
	}

	for _, m := range rows {
		line := fmt.Sprintf("  %-10s %-20s %16s", m.Architecture, m.Name, formatValue(m.Value, m.Unit))
		if withBars {
			line += "  " + c.styles.Bar.Render(bar(m.Value, maxVal))
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	return rows
}

func (c *Console) renderCompliance(b *strings.Builder) {
	if len(c.compliance) == 0 {
		return
	}

	c.section(b, "Compliance")

	passed := 0
	for _, r := range c.compliance {
		mark := c.styles.Pass.Render("✓")
		if r.Passed {
			passed++
		} else {
			mark = c.styles.Fail.Render("✗")
		}

		line := fmt.Sprintf("%s %-30s", mark, r.CheckName)
		if r.Detail != "" {
			line += " " + c.styles.Dim.Render(truncate(r.Detail, consoleWidth-36))
		}
		b.WriteString("  " + line + "\n")
	}

	c.summary(b, fmt.Sprintf("%d/%d checks passed", passed, len(c.compliance)))
}

func (c *Console) summary(b *strings.Builder, line string) {
	b.WriteString("  " + c.styles.Label.Render(line) + "\n")
}

func (c *Console) metricsOf(kind vecbench.OperationKind) []vecbench.MetricRecord {
	var out []vecbench.MetricRecord
	for _, m := range c.metrics {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func find(rows []vecbench.MetricRecord, arch, name string) (vecbench.MetricRecord, bool) {
	for _, m := range rows {
		if m.Architecture == arch && m.Name == name {
			return m, true
		}
	}
	return vecbench.MetricRecord{}, false
}

// orderedNames returns the distinct record names in first-appearance order.
func orderedNames(rows []vecbench.MetricRecord) []string {
	var names []string
	seen := make(map[string]struct{}, len(rows))
	for _, m := range rows {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		names = append(names, m.Name)
	}
	return names
}

func formatValue(v float64, unit string) string {
	switch unit {
	case "bytes":
		return humanize.IBytes(uint64(v))
	case "ops/s":
		return humanize.CommafWithDigits(v, 1) + " ops/s"
	case "ms":
		return humanize.CommafWithDigits(v, 3) + " ms"
	case "abs-error":
		return fmt.Sprintf("%.3g", v)
	default:
		return fmt.Sprintf("%g %s", v, unit)
	}
}

func bar(v, maxVal float64) string {
	if maxVal <= 0 || v <= 0 {
		return ""
	}
	n := int(v / maxVal * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// truncate shortens a string to the given display width, handling
// multi-byte characters correctly.
func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	currentWidth := 0
	for i, r := range runes {
		w := lipgloss.Width(string(r))
		if currentWidth+w > width-1 {
			return string(runes[:i]) + "…"
		}
		currentWidth += w
	}
	return s
}
