package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-quickadd/pkg/quickparse"
)

var (
	parseJSON       bool
	parseBadgesOnly bool
	parseNow        string
	parseTimezone   string
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Parse a task line into its structured parts",
	Long:  `Parse one line of natural task-entry text and print what was read. Arguments are joined with spaces, so quoting the line is optional.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the parse result as JSON")
	parseCmd.Flags().BoolVar(&parseBadgesOnly, "badges-only", false, "Print only the badge lines, one per line")
	parseCmd.Flags().StringVar(&parseNow, "now", "", `Reference moment instead of the wall clock (RFC3339, "2006-01-02 15:04" or "2006-01-02")`)
	parseCmd.Flags().StringVar(&parseTimezone, "timezone", "Local", "IANA timezone to resolve dates in")
	parseCmd.MarkFlagsMutuallyExclusive("json", "badges-only")
}

func runParse(cmd *cobra.Command, args []string) error {
	parser, err := quickparse.NewParser(parseTimezone)
	if err != nil {
		return err
	}
	now, err := resolveNow(parseNow, parser.Location())
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	parsed := parser.ParseAt(text, now)
	badges := quickparse.FormatForDisplayAt(parsed, now)

	// cmd.Println falls back to stderr, which would break piping --json.
	w := cmd.OutOrStdout()
	switch {
	case parseJSON:
		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case parseBadgesOnly:
		for _, badge := range badges {
			fmt.Fprintln(w, badge)
		}
	default:
		fmt.Fprintln(w, renderParsed(parsed, badges))
	}
	return nil
}

// resolveNow turns the --now flag into a reference moment in loc. An empty
// flag means the wall clock.
func resolveNow(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Now().In(loc), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(`unrecognized --now value %q (want RFC3339, "2006-01-02 15:04" or "2006-01-02")`, value)
}

// renderParsed lays out the canonical title with a row of chips beneath it:
// badge chips for the parsed markers, then tag and folder chips.
func renderParsed(parsed quickparse.ParsedTask, badges []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(parsed.Text))

	chips := make([]string, 0, len(badges)+len(parsed.Tags)+1)
	for _, badge := range badges {
		chips = append(chips, badgeStyle.Render(badge))
	}
	for _, tag := range parsed.Tags {
		chips = append(chips, tagStyle.Render("#"+tag))
	}
	if parsed.FolderName != "" {
		chips = append(chips, folderStyle.Render("@"+parsed.FolderName))
	}

	if len(chips) == 0 {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("No markers found. Try: quickadd parse Call mom tomorrow at 5pm remind me 15 min before #family"))
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(chips, " "))
	return b.String()
}
