package main

import (
	"focusring/internal/ui/preferences"

	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	configPath string
	mute       bool
	noTray     bool
}

// apply returns the settings in effect for this run. Flag overrides are never
// written back to the settings file.
func (opts options) apply(settings preferences.Settings) preferences.Settings {
	if opts.mute {
		settings.ChimeEnabled = false
	}
	return settings
}

func newRootCmd(run func(options) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "focusring",
		Short:         "Pomodoro focus timer with a visual countdown ring",
		Long:          "FocusRing counts down 25-minute focus intervals followed by 5-minute breaks, chiming and notifying at every phase change.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default is the user config directory)")
	flags.BoolVar(&opts.mute, "mute", false, "disable the transition chime for this run")
	flags.BoolVar(&opts.noTray, "no-tray", false, "do not install a system tray icon")

	return cmd
}
