package cmd

import (
	"os"
	"strings"
	"time"

	"nomi/src/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Config file
	cfgFile string

	// Form flags
	darkMode       bool
	noClipboard    bool
	feedbackDelay  time.Duration
	strictFeedback bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nomi",
	Short: "Build a Nomi appearance shared note from tagged features",
	Long: `nomi lets you name a Nomi, tick appearance features across fixed
categories (hair, eyes, skin and so on) and turn the selection into a
one-line description ready to paste into a shared note.

When run without subcommands it opens the interactive form.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Set the run function
	rootCmd.RunE = runForm

	// Form flags
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Start in dark mode")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "Never touch the system clipboard")
	rootCmd.PersistentFlags().DurationVar(&feedbackDelay, "feedback-delay", 3*time.Second, "How long copy feedback stays visible")
	rootCmd.Flags().BoolVar(&strictFeedback, "strict-feedback", false, "Only let the latest copy clear its own feedback")

	// Config file
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/nomi/config.toml)")

	// Bind flags to viper
	viper.BindPFlag("theme.dark", rootCmd.PersistentFlags().Lookup("dark"))
	viper.BindPFlag("feedback.delay", rootCmd.PersistentFlags().Lookup("feedback-delay"))
	viper.BindPFlag("feedback.strict", rootCmd.Flags().Lookup("strict-feedback"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("NOMI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; defaults apply
	_ = viper.ReadInConfig()
}

// configPath returns the config file in use, or where it would be created
func configPath() (string, error) {
	if f := viper.ConfigFileUsed(); f != "" {
		return f, nil
	}
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.GetConfigFile()
}

// GetSettings layers env and flag overrides from viper over the TOML file
func GetSettings() (*config.Settings, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return nil, err
	}

	if viper.IsSet("theme.dark") {
		settings.Theme.Dark = viper.GetBool("theme.dark")
	}
	if viper.IsSet("clipboard.enabled") {
		settings.Clipboard.Enabled = viper.GetBool("clipboard.enabled")
	}
	if viper.IsSet("feedback.delay") {
		if d := viper.GetDuration("feedback.delay"); d > 0 {
			settings.Feedback.Delay = d
		}
	}
	if viper.IsSet("feedback.strict") {
		settings.Feedback.Strict = viper.GetBool("feedback.strict")
	}
	if noClipboard {
		settings.Clipboard.Enabled = false
	}

	return settings, nil
}
