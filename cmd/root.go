// Package cmd implements the acs71020 command line tool.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acs71020-go/config"
	"acs71020-go/x/logx"
)

const (
	LogLevelOptionName = "log-level"
	ConfigOptionName   = "config"
	ProfileOptionName  = "profile"
	OutputOptionName   = "output"
	FromOptionName     = "from"
	SaturateOptionName = "saturate"
	ForceOptionName    = "force"
)

// env is shared by every subcommand and filled in before they run.
type env struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel, cfgPath, profile string
	e := &env{cfg: config.NewDefaultConfig(), log: logx.Nop()}
	cmd := &cobra.Command{
		Use:           "acs71020",
		Short:         "Decode and encode ACS71020 register words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				e.cfg.SetPath(cfgPath)
			}
			if err := e.cfg.Load(); err != nil {
				return err
			}
			if profile != "" {
				if err := e.cfg.UseProfile(profile); err != nil {
					return err
				}
			}
			if logLevel != "" {
				e.cfg.LogLevel = logLevel
			}
			log, err := logx.New(cmd.ErrOrStderr(), e.cfg.LogLevel)
			if err != nil {
				return err
			}
			e.log = log
			e.log.Debugw("config loaded",
				"path", e.cfg.Path(),
				"profile", e.cfg.Profile,
				"voltage_full_scale", e.cfg.Calibration.VoltageFullScale,
				"current_full_scale", e.cfg.Calibration.CurrentFullScale)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(newCatalogCommand(e))
	cmd.AddCommand(newDecodeCommand(e))
	cmd.AddCommand(newEncodeCommand(e))
	cmd.AddCommand(newQuantizeCommand(e))
	cmd.AddCommand(newSnapshotCommand(e))
	cmd.AddCommand(newDemoCommand(e))
	cmd.AddCommand(newConfigCommand(e))
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", logx.HelpLevels))
	cmd.PersistentFlags().StringVar(&cfgPath, ConfigOptionName, "", fmt.Sprintf("Config file (default %s)", config.DefaultConfigPath()))
	cmd.PersistentFlags().StringVar(&profile, ProfileOptionName, "", fmt.Sprintf("Calibration profile, one of %v", config.Profiles()))
	return cmd
}
