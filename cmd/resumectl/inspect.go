package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-renderer/resume/inspect"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the format, page count and text of a rendered document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := inspect.File(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "format: %s\n", report.Format)
			if report.Pages > 0 {
				fmt.Fprintf(out, "pages: %d\n", report.Pages)
			}
			fmt.Fprintf(out, "\n%s\n", report.Text)
			return nil
		},
	}
}
