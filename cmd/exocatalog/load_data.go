package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/exocatalog/internal/ingestion/pipeline"
)

func newLoadDataCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load-data <csv_file_path>",
		Short: "Load planetary data from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			_, err = a.Ingest(cmd.Context(), args[0], func(o pipeline.RowOutcome) {
				for _, w := range o.Warnings {
					fmt.Fprintln(out, w)
				}
				if o.Failed() {
					fmt.Fprintln(errOut, o.Message())
					return
				}
				fmt.Fprintln(out, o.Message())
			})
			return err
		},
	}
}
