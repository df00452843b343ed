package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/roster/internal/models"
)

func newDeleteCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:     "delete",
		Short:   "Delete a person by ID",
		Example: `  roster delete --id 3`,
		Args:    cobra.NoArgs,
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

			// An unknown ID is the same as selecting nothing.
			var selected *models.Person
			if p, ok := list.Find(id); ok {
				selected = &p
			}

			return list.Delete(cmd.Context(), selected)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "ID of the person to delete (see roster list --format csv)")

	return cmd
}
