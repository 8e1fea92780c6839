package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

var (
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	levelStyles    = map[logrus.Level]lipgloss.Style{
		logrus.PanicLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		logrus.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		logrus.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		logrus.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logrus.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logrus.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logrus.TraceLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// TextFormatter writes one line per entry: time, level, component, caller,
// message and the remaining fields as key=value pairs.
type TextFormatter struct {
	Config FormatConfig
	// Color styles the level and component. Only set for an interactive stderr.
	Color bool
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}

	level := strings.ToUpper(entry.Level.String())
	if entry.Level == logrus.WarnLevel {
		level = "WARN"
	}
	b.WriteString(f.style(levelStyles[entry.Level], "["+level+"]"))

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		b.WriteString(" [" + f.style(componentStyle, fmt.Sprint(component)) + "]")
	}

	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(" " + key + "=" + formatValue(entry.Data[key]))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func (f *TextFormatter) style(s lipgloss.Style, text string) string {
	if !f.Color {
		return text
	}
	return s.Render(text)
}

// formatValue quotes values that would otherwise split the key=value list.
func formatValue(v interface{}) string {
	var s string
	if err, ok := v.(error); ok {
		s = err.Error()
	} else {
		s = fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
