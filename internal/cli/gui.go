package cli

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/mmynk/roster/internal/gui"
)

func runGUI(cmd *cobra.Command, _ []string) (err error) {
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

	fyneApp := app.NewWithID(gui.AppID)
	application := gui.NewApplication(fyneApp, s.store, s.metrics, cfg.WindowWidth, cfg.WindowHeight)

	return application.Run(cmd.Context())
}
