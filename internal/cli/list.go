package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		filter string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the people in the roster",
		Example: `  roster list
  roster list --filter an
  roster list --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := s.Close(); err == nil {
					err = cerr
				}
			}()

			list := s.listController(cmd.ErrOrStderr())
			if err := list.Initialize(cmd.Context()); err != nil {
				return err
			}

			return renderPeople(cmd.OutOrStdout(), list.Filter(filter), format)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only show people whose first name contains this text (case-insensitive)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, markdown")

	return cmd
}
