package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trimeph/gomeph/internal/config"
	"golang.org/x/term"
)

// All linker flags will be set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "gomeph",
	Short: "Mean square displacements and Mössbauer factors from phonon calculations.",
	Long: `gomeph reads the thermal displacements of a phonon calculation, either for a single
volume or for a set of volumes in the quasi-harmonic approximation, and computes the
mean square displacement of each atom and its Mössbauer factor as a function of temperature.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gomeph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("GOMEPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("workdir", config.DefaultWorkDir)
	viper.SetDefault("out", config.DefaultOutDir)
	viper.SetDefault("strategy", config.DefaultStrategy)
	viper.SetDefault("plot-format", config.DefaultPlotFormat)
	viper.SetDefault("store", config.DefaultStore)
	viper.SetDefault("color", config.DefaultColor)
}

// loadConfig merges defaults, config file, environment and flags, and checks the result.
func loadConfig() (*config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	cfg := &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	setColor(cfg.Color)
	return cfg, nil
}

func setColor(mode string) {
	switch mode {
	case "yes":
		color.NoColor = false
	case "no":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "config file (default is .gomeph.yaml in . or $HOME)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.AddCommand(processCmd, versionCmd)
}
