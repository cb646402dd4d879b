// File: cmd/scan.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"codesnap/pkg/scan"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan projects and write one report per project",
	Long: `Scan walks every project directory under the input directory (or a single
root given with --project), applies the selection rules, and writes a
line-numbered report per project into the output directory.

Defaults can also be set through CODESNAP_-prefixed environment variables
(CODESNAP_INPUT_DIR, CODESNAP_OUTPUT_DIR, CODESNAP_MAX_FILE_SIZE,
CODESNAP_IGNORE_FILES, CODESNAP_IGNORE_DIRS); explicit flags win.`,
	RunE: runScan,
}

func init() {
	flags := scanCmd.Flags()
	flags.StringP("input", "i", "input", "Directory containing project roots")
	flags.StringP("output", "o", "output", "Directory for generated reports")
	flags.String("project", "", "Scan a single project root instead of --input")
	flags.Int64("max-size", scan.DefaultMaxFileSize, "Per-file size cap in bytes")
	flags.String("ignore-files", "", "Extra pipe-delimited filename globs to ignore")
	flags.String("ignore-dirs", "", "Extra pipe-delimited directory globs to prune")
	flags.String("ignore-paths", "", "Extra pipe-delimited relative path substrings to ignore")
	flags.Bool("no-gitignore", false, "Do not honor per-project .gitignore files")
	flags.Int("workers", 1, "Projects scanned concurrently (0 = one per CPU)")

	viper.SetEnvPrefix("codesnap")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("input_dir", flags.Lookup("input"))
	_ = viper.BindPFlag("output_dir", flags.Lookup("output"))
	_ = viper.BindPFlag("max_file_size", flags.Lookup("max-size"))
	_ = viper.BindPFlag("ignore_files", flags.Lookup("ignore-files"))
	_ = viper.BindPFlag("ignore_dirs", flags.Lookup("ignore-dirs"))

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	inputDir := viper.GetString("input_dir")
	outputDir := viper.GetString("output_dir")
	singleProject, _ := cmd.Flags().GetString("project")
	ignorePaths, _ := cmd.Flags().GetString("ignore-paths")
	noGitignore, _ := cmd.Flags().GetBool("no-gitignore")
	workers, _ := cmd.Flags().GetInt("workers")

	base := scan.NewConfig("")
	base.MaxFileSize = viper.GetInt64("max_file_size")
	base.UseGitignore = !noGitignore
	base.IgnoreFiles = append(base.IgnoreFiles, scan.ParsePatternList(viper.GetString("ignore_files"))...)
	base.IgnoreDirs = append(base.IgnoreDirs, scan.ParsePatternList(viper.GetString("ignore_dirs"))...)
	base.IgnoreRelPaths = append(base.IgnoreRelPaths, scan.ParseStringList(ignorePaths)...)

	var projects []scan.Project
	if singleProject != "" {
		name := filepath.Base(filepath.Clean(singleProject))
		projects = []scan.Project{{
			Name:   name,
			Root:   singleProject,
			Output: filepath.Join(outputDir, name+"_report.txt"),
		}}
	} else {
		var err error
		projects, err = scan.DiscoverProjects(inputDir, outputDir)
		if err != nil {
			return err
		}
	}
	if len(projects) == 0 {
		return fmt.Errorf("no project directories found in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
	cyan := color.New(color.FgCyan).SprintfFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	logger.Info("Starting scan run",
		zap.Int("projects", len(projects)),
		zap.String("outputDir", outputDir),
		zap.Int("workers", workers))

	results := scan.RunAll(projects, base, workers, logger)

	totals := &scan.RunStats{}
	succeeded := 0
	for i, res := range results {
		fmt.Println(cyan("[%d/%d] %s", i+1, len(results), res.Project.Name))
		if res.Err != nil {
			fmt.Printf("  %s %v\n", red("✗"), res.Err)
			logger.Error("Project scan failed",
				zap.String("project", res.Project.Name),
				zap.Error(res.Err))
			continue
		}
		succeeded++
		totals.Add(res.Stats)
		fmt.Printf("  %s %d files, %d skipped (%d via .gitignore), %s -> %s\n",
			green("✓"),
			res.Stats.Processed,
			res.Stats.Skipped,
			res.Stats.SkippedGitignore,
			scan.FormatSize(res.Stats.TotalBytes),
			res.Project.Output)
	}

	fmt.Printf("\nProjects: %d/%d  Files: %d processed, %d skipped  Size: %s\n",
		succeeded, len(results),
		totals.Processed, totals.Skipped, scan.FormatSize(totals.TotalBytes))

	if succeeded == 0 {
		return fmt.Errorf("all %d projects failed to scan", len(results))
	}
	return nil
}
