package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomathdoc/internal/ui/pretty"
)

// helpPalette holds the lipgloss styles used when rendering help text.
// A no-color palette is all zero styles, so rendering through it is a
// pass-through.
type helpPalette struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	example lipgloss.Style
	muted   lipgloss.Style
}

func newHelpPalette(colorEnabled bool) helpPalette {
	if !colorEnabled {
		return helpPalette{}
	}
	return helpPalette{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		example: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled usage and help output for cobra commands.
type HelpFormatter struct {
	palette helpPalette
}

// NewHelpFormatter creates a formatter whose color use follows colorMode
// ("auto", "always", "never") and whether writer is a terminal.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{palette: newHelpPalette(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ name .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ name .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ muted (join .Aliases ", ") }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ name (pad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ name (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + usageTemplate

// flagNameRe matches the short and long flag names in the flag column of
// a pflag usage line. Value type hints ("string", "int") do not match and
// stay unstyled.
var flagNameRe = regexp.MustCompile(`--?[a-zA-Z][a-zA-Z0-9_-]*`)

// styleFlagUsages colorizes the flag names in pflag's FlagUsages output
// while keeping its column alignment intact.
func (h *HelpFormatter) styleFlagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")

	for i, line := range lines {
		head, rest, ok := splitUsageLine(line)
		if !ok {
			continue
		}
		lines[i] = flagNameRe.ReplaceAllStringFunc(head, func(s string) string {
			return h.palette.flag.Render(s)
		}) + rest
	}

	return strings.Join(lines, "\n")
}

// splitUsageLine cuts a usage line at the gap between the flag column and
// the description, keeping the separating spaces with the description so
// alignment survives restyling.
func splitUsageLine(line string) (head, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	gap := strings.Index(trimmed, "  ")
	if gap < 0 {
		return "", "", false
	}
	cut := len(line) - len(trimmed) + gap
	return line[:cut], line[cut:], true
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading": h.palette.heading.Render,
		"name":    h.palette.command.Render,
		"muted":   h.palette.muted.Render,
		"example": h.palette.example.Render,
		"flags":   h.styleFlagUsages,
		"join":    strings.Join,
		"trim":    strings.TrimSpace,
		"pad": func(s string, width int) string {
			return fmt.Sprintf("%-*s", width, s)
		},
	}
}

// ApplyToCommand installs the styled usage and help functions on cmd.
// Subcommands inherit them from the root.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()
	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStdout(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}
