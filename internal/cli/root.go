// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audmood command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/audmood/internal/config"
)

const configName = ".audmood"

// app carries state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
}

// NewRootCommand builds the audmood command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "audmood",
		Short: "Estimates the mood of audio files",
		Long: `audmood decodes audio files, extracts loudness, noisiness, brightness
and tempo features, and maps them to one of angry, sad, happy, surprised
or neutral.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(
		&a.cfgFile, "config", "", "config file (default is $HOME/.audmood.yaml)")

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	bindFlags(a.v, root.PersistentFlags(), map[string]string{
		"log-level": config.KeyLogLevel,
	})

	root.AddCommand(
		newAnalyzeCommand(a),
		newMoodsCommand(),
		newFormatsCommand(a),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup reads the config file, if any, then loads and validates settings.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	if used := a.v.ConfigFileUsed(); used != "" {
		log.WithField("path", used).Debug("using config file")
	}
	return nil
}

// bindFlags ties each named flag to its viper key so flags override the
// config file and the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			// only fails for a nil flag
			_ = v.BindPFlag(key, f)
		}
	})
}
