package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strvec/internal/render"
	"github.com/msto63/strvec/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			if a.renderer.Format() != render.FormatText {
				return a.renderer.Value(a.stdout, info)
			}
			fmt.Fprintf(a.stdout, "strvec v%s\n", info.Version)
			fmt.Fprintf(a.stdout, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(a.stdout, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(a.stdout, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(a.stdout, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}
}
