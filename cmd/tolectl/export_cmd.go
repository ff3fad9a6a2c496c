package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/modules/tole/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/tole/services"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		out    string
		search string
		status string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tole list as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := tole.ListFilter{Search: strings.TrimSpace(search), Status: tole.ParseStatusFilter(status)}
			if status != "" && filter.Status == tole.FilterAll && status != string(tole.FilterAll) {
				return fmt.Errorf("invalid --status %q", status)
			}

			ctx, client, err := opts.login(cmd.Context())
			if err != nil {
				return err
			}
			svc := services.NewToleService(persistence.NewToleRepository(client))
			toles, err := svc.List(ctx)
			if err != nil {
				return err
			}
			now := time.Now()
			toles = filter.Apply(toles, now)

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := services.WriteXLSX(w, toles, now); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %d toles to %s\n", len(toles), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "toles.xlsx", "Output file, - for stdout")
	cmd.Flags().StringVar(&search, "search", "", "Keep toles whose name, contact or ID contains this text")
	cmd.Flags().StringVar(&status, "status", "", "Keep toles with this status: active, inactive or expired")
	return cmd
}
