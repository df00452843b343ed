package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/roster/internal/controller"
	"github.com/mmynk/roster/internal/models"
)

func newAddCmd() *cobra.Command {
	var in controller.Input

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a person",
		Example: `  roster add --first-name Ana --last-name Ruiz --age 30`,
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

			res, err := list.Add().Save(cmd.Context(), in)
			if err != nil {
				return err
			}

			return renderPeople(cmd.OutOrStdout(), []models.Person{res.Person}, "table")
		},
	}

	// Age is taken as text so the form rules (required, number > 0) apply unchanged.
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Age, "age", "", "age in years")

	return cmd
}
