package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/pgsplit/internal/archive"
)

var diffCmd = &cobra.Command{
	Use:   "diff <archive_a> <archive_b>",
	Short: "Compare two split archives",
	Long: `Diff compares the contents of two split archives file by file and prints
a unified diff for every path whose content differs, plus the paths present
in only one of the archives.

Entry metadata (timestamps, permissions, ordering) is ignored; only file
paths and contents are compared. This is the review tool for "did this
deployment change the schema the way I expected": split before, split
after, diff the archives.

Exit Codes:
  0 - Archives have identical contents
  1 - Archives differ
  2 - Usage error or unreadable archive

Examples:
  pgsplit diff before.tar after.tar
  pgsplit diff --aname prod --bname staging prod.tar staging.tar`,
	Args: RequireTwoArchives,
	RunE: runDiff,
}

type diffFlagValues struct {
	aname string
	bname string
}

var diffFlags diffFlagValues

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVar(&diffFlags.aname, "aname", "a",
		"Label for the left archive in diff headers")
	diffCmd.Flags().StringVar(&diffFlags.bname, "bname", "b",
		"Label for the right archive in diff headers")
}

// Diff line styles, applied only when stdout is a terminal.
var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))  // Green
	diffDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	diffHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := readArchive(args[0])
	if err != nil {
		return err
	}
	b, err := readArchive(args[1])
	if err != nil {
		return err
	}

	report, err := archive.Compare(a, b, diffFlags.aname, diffFlags.bname)
	if err != nil {
		return err
	}
	if report.Empty() {
		return nil
	}

	colorize := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

	for _, p := range report.OnlyInA {
		fmt.Printf("Only in %s: %s\n", diffFlags.aname, p)
	}
	for _, p := range report.OnlyInB {
		fmt.Printf("Only in %s: %s\n", diffFlags.bname, p)
	}
	for _, d := range report.Diffs {
		printUnified(d.Unified, colorize)
	}

	return fmt.Errorf("archives differ: %d changed, %d only in %s, %d only in %s",
		len(report.Diffs), len(report.OnlyInA), diffFlags.aname, len(report.OnlyInB), diffFlags.bname)
}

func readArchive(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	contents, err := archive.ReadContents(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return contents, nil
}

// printUnified writes one unified diff, coloring added, removed and header
// lines when attached to a terminal.
func printUnified(unified string, colorize bool) {
	if !colorize {
		fmt.Print(unified)
		return
	}

	for _, line := range strings.SplitAfter(unified, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"), strings.HasPrefix(text, "@@"):
			fmt.Println(diffHeaderStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			fmt.Println(diffAddStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			fmt.Println(diffDelStyle.Render(text))
		default:
			fmt.Println(text)
		}
	}
}
