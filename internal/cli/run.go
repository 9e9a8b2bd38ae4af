package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/stagereslot/internal/config"
	"github.com/danieljhkim/stagereslot/internal/engine"
)

// runSummary is what the summary section reports about a finished run.
type runSummary struct {
	BaseStage      string
	CurrentStage   string
	AlreadyRenamed bool
	ConfigPath     string
	Redirects      int
	NewFiles       int
	NewDirs        int
	Renamed        int
	RenameFailures []string
	RemovedDirs    int
	XMSBTPath      string
	DatabasePath   string
}

func runReslot(cmd *cobra.Command, args []string) error {
	paths, err := config.ResolvePaths(args[0], baseManifest)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	op := newTerminalOperator(cmd.InOrStdin(), out)
	eng := newEngine()

	PrintSection(out, "Stage Reslot")
	PrintLabelValue(out, "Mod", paths.Root)
	PrintLabelValue(out, "Manifest", paths.Manifest)

	result, err := eng.Run(cmd.Context(), &engine.RunRequest{
		Root:         paths.Root,
		ManifestPath: paths.Manifest,
	}, op)
	if err != nil {
		return err
	}

	printSummary(out, summarize(result))
	return nil
}

func summarize(result *engine.RunResult) *runSummary {
	s := &runSummary{
		BaseStage:      result.BaseStage,
		CurrentStage:   result.CurrentStage,
		AlreadyRenamed: result.AlreadyRenamed,
		ConfigPath:     result.ConfigPath,
		Redirects:      len(result.Plan.Redirects),
		NewFiles:       len(result.Plan.NewFiles),
		NewDirs:        len(result.Plan.NewDirs),
		RemovedDirs:    result.RemovedDirs,
		XMSBTPath:      result.XMSBTPath,
		DatabasePath:   result.DatabasePath,
	}
	if result.Renames != nil {
		s.Renamed = result.Renames.Done
		for _, step := range result.Renames.Failed() {
			s.RenameFailures = append(s.RenameFailures, fmt.Sprintf("%s -> %s", step.From, step.To))
		}
	}
	return s
}

func printSummary(w io.Writer, s *runSummary) {
	PrintSection(w, "Summary")
	PrintLabelValue(w, "Stage", fmt.Sprintf("%s -> %s", s.BaseStage, s.CurrentStage))
	PrintLabelValue(w, "Config", s.ConfigPath)
	PrintLabelValue(w, "Redirects", PrintCount(s.Redirects, "file", "files"))
	PrintLabelValue(w, "New files", PrintCount(s.NewFiles, "file", "files"))
	PrintLabelValue(w, "New dirs", PrintCount(s.NewDirs, "directory", "directories"))

	if s.AlreadyRenamed {
		PrintEmptyState(w, "Files were already renamed, nothing moved")
	} else {
		PrintLabelValue(w, "Renamed", PrintCount(s.Renamed, "path", "paths"))
	}
	if len(s.RenameFailures) > 0 {
		PrintWarning(w, "Rename these manually:")
		PrintList(w, s.RenameFailures, 1)
	}

	PrintLabelValue(w, "Empty dirs removed", fmt.Sprintf("%d", s.RemovedDirs))
	if s.XMSBTPath != "" {
		PrintLabelValue(w, "Stage name", s.XMSBTPath)
	}
	if s.DatabasePath != "" {
		PrintLabelValue(w, "Database", s.DatabasePath)
	}
}
