package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "theme")
	Short     string   // short flag without "-" (e.g., "V")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsTheme   bool     // true if values come from the theme registry (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "verbose", Short: "v", Help: "Log diagnostics at debug level"},
	{Long: "theme", Help: "Theme used by the demo", IsTheme: true, ValueName: "theme"},
	{Long: "no-color", Help: "Disable ANSI escape codes"},
	{Long: "demo", Help: "Demo section to run", Values: []string{"all", "themes", "progress", "spinner", "workflow", "table", "preview"}, ValueName: "section"},
	{Long: "steps", Help: "Progress bar steps", Values: []string{"10", "20", "50", "100"}, ValueName: "number"},
	{Long: "width", Help: "Progress bar width", Values: []string{"20", "30", "40", "60"}, ValueName: "columns"},
	{Long: "delay", Help: "Delay between demo updates", Values: []string{"10ms", "50ms", "100ms", "250ms"}, ValueName: "duration"},
	{Long: "charset", Help: "Spinner character set index", ValueName: "index"},
	{Long: "metrics-file", Help: "Write render metrics in Prometheus text format", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Serve render metrics over HTTP", ValueName: "address"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - themes: Names offered for --theme.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, themes []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, themes)
	case "zsh":
		return generateZshCompletion(out, themes)
	case "fish":
		return generateFishCompletion(out, themes)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, themes []string) error {
	var opts []string
	var caseBody strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}

		var body string
		switch {
		case f.IsTheme:
			body = `COMPREPLY=( $(compgen -W "${themes}" -- "${cur}") )`
		case f.IsFile:
			filePatterns = append(filePatterns, "--"+f.Long)
			continue
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&caseBody, "        --%s)\n            %s\n            return 0\n            ;;\n", f.Long, body)
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&caseBody, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for colorize
# Add this to your ~/.bashrc or ~/.bash_completion

_colorize_completions() {
    local cur prev opts themes
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    themes="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _colorize_completions colorize
`, strings.Join(opts, " "), strings.Join(themes, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, themes []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef colorize

# Zsh completion script for colorize
# Add this to your ~/.zshrc or place in $fpath

_colorize() {
    local -a themes
    themes=(%s)

    _arguments -s \
%s
}

_colorize "$@"
`, strings.Join(themes, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsTheme:
		valueSuffix = fmt.Sprintf(":%s:($themes)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, themes []string) error {
	lines := []string{
		"# Fish completion script for colorize",
		"# Add this to ~/.config/fish/completions/colorize.fish",
		"",
		"# Disable file completion by default",
		"complete -c colorize -f",
		"",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, strings.Join(themes, " ")))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, themeList string) string {
	parts := []string{"complete -c colorize"}
	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsTheme:
		parts = append(parts, fmt.Sprintf("-xa '%s'", themeList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
