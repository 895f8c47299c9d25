package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sheetlingo/internal/archive"
	"sheetlingo/internal/checkpoint"
	"sheetlingo/internal/sheet"
)

// CreateSnapshotsCommand creates the subcommand that lists checkpoint
// files and shows how to resume from them.
func CreateSnapshotsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots [file]",
		Short: "List checkpoint files and how to resume from them",
		Long: `Without arguments, lists every checkpoint in the checkpoint directory
with its translation progress. With a file argument, shows detailed
statistics for that checkpoint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showSnapshotDetails(args[0])
			}
			return listSnapshots(flags.CheckpointDir)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "archive",
		Short: "Move the checkpoint directory aside into a timestamped archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return archive.ArchiveCheckpoints(flags.CheckpointDir)
		},
	})

	return cmd
}

func listSnapshots(dir string) error {
	infos, err := checkpoint.List(dir)
	if err != nil {
		return fmt.Errorf("failed to list checkpoints: %w", err)
	}
	if len(infos) == 0 {
		fmt.Printf("No checkpoint files found in %q.\n", dir)
		return nil
	}

	heavy := strings.Repeat("=", 80)
	light := strings.Repeat("-", 80)

	fmt.Println(heavy)
	fmt.Println("AVAILABLE CHECKPOINT FILES")
	fmt.Println(heavy)
	fmt.Printf("%-50s %-10s %-10s %-10s %-10s\n", "File", "Records", "Values", "Formulas", "Type")
	fmt.Println(light)
	for _, info := range infos {
		fmt.Printf("%-50s %-10d %-10d %-10d %-10s\n",
			info.Name, info.Records, info.Values, info.Formulas, strings.ToUpper(string(info.Kind)))
	}
	fmt.Println(light)

	mostRecent := infos[0]
	mostProgress := mostRecent
	for _, info := range infos[1:] {
		if info.Values > mostProgress.Values {
			mostProgress = info
		}
	}

	fmt.Println("\nSUMMARY:")
	fmt.Printf("Total checkpoint files: %d\n", len(infos))
	fmt.Printf("Most recent checkpoint: %s\n", mostRecent.Name)
	fmt.Printf("  Written: %s\n", mostRecent.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Progress: %d/%d values (%.1f%%)\n", mostRecent.Values, mostRecent.Records, progressPct(mostRecent))
	if mostProgress.Path != mostRecent.Path {
		fmt.Printf("Most progress: %s\n", mostProgress.Name)
		fmt.Printf("  Progress: %d/%d values (%.1f%%)\n", mostProgress.Values, mostProgress.Records, progressPct(mostProgress))
	}

	fmt.Println("\nTo resume from the most recent checkpoint, run:")
	fmt.Printf("sheetlingo --resume-from %q\n", mostRecent.Path)

	fmt.Println("\nAll resume commands:")
	for _, info := range infos {
		fmt.Printf("sheetlingo --resume-from %q  # %s\n", info.Path, info.Name)
	}
	return nil
}

func progressPct(info checkpoint.Info) float64 {
	if info.Records == 0 {
		return 0
	}
	return float64(info.Values) / float64(info.Records) * 100
}

func showSnapshotDetails(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checkpoint not found: %w", err)
	}
	table, err := checkpoint.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}

	heavy := strings.Repeat("=", 80)
	fmt.Println(heavy)
	fmt.Printf("CHECKPOINT DETAILS: %s\n", filepath.Base(path))
	fmt.Println(heavy)
	fmt.Printf("File path: %s\n", path)
	fmt.Printf("File size: %d bytes\n", st.Size())
	fmt.Printf("Modified: %s\n", st.ModTime().Format("2006-01-02 15:04:05"))
	fmt.Printf("Total records: %d\n", table.Len())
	fmt.Printf("\nColumns: %s\n", strings.Join(table.Header(), ", "))

	for _, col := range table.Header() {
		lang, ok := strings.CutPrefix(col, "CellValue_")
		if !ok || col == sheet.SourceValueColumn {
			continue
		}

		vi, _ := table.Column(col)
		values := table.CountSet(vi)
		fmt.Printf("\n%s Value Translation Progress:\n", lang)
		fmt.Printf("  Translated: %d\n", values)
		fmt.Printf("  Empty: %d\n", table.Len()-values)
		if table.Len() > 0 {
			fmt.Printf("  Progress: %.1f%%\n", float64(values)/float64(table.Len())*100)
		}

		if fi, ok := table.Column("CellFormula_" + lang); ok {
			formulas := table.CountSet(fi)
			fmt.Printf("%s Formula Translation Progress:\n", lang)
			fmt.Printf("  Translated: %d\n", formulas)
			fmt.Printf("  Empty: %d\n", table.Len()-formulas)
		}
	}

	if svi, ok := table.Column(sheet.SourceValueColumn); ok && table.Len() > 0 {
		n := table.Len()
		if n > 5 {
			n = 5
		}
		fmt.Println("\nSample records:")
		for i := 0; i < n; i++ {
			fmt.Printf("  %d: %s\n", i, table.At(i, svi).Value)
		}
	}
	return nil
}
