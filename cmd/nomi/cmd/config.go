package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nomi configuration",
	Long: `Manage nomi configuration settings.

Examples:
  nomi config get theme.dark
  nomi config set theme.dark true
  nomi config set feedback.delay 5s
  nomi config list
  nomi config path
  nomi config edit`,
}

// configGetCmd represents the config get command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := viper.Get(key)
		if value == nil {
			return fmt.Errorf("key '%s' not found", key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		// Try to parse as bool
		if value == "true" || value == "false" {
			viper.Set(key, value == "true")
		} else {
			viper.Set(key, value)
		}

		configFile, err := configPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return err
		}

		// Write config
		if err := viper.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
		fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
		return nil
	},
}

// configListCmd represents the config list command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		settings, err := GetSettings()
		if err != nil {
			return err
		}

		effective := map[string]interface{}{
			"theme.dark":        settings.Theme.Dark,
			"clipboard.enabled": settings.Clipboard.Enabled,
			"feedback.delay":    settings.Feedback.Delay,
			"feedback.strict":   settings.Feedback.Strict,
		}

		// Anything else the file carries
		for k, v := range flattenMap("", viper.AllSettings()) {
			if _, known := effective[k]; !known {
				effective[k] = v
			}
		}

		// Sort keys
		var keys []string
		for k := range effective {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(out, "Configuration settings:")
		for _, key := range keys {
			fmt.Fprintf(out, "  %s = %v\n", key, effective[key])
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(out, "\nConfig file: %s\n", configFile)
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configFile)
		return nil
	},
}

// configEditCmd represents the config edit command
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file in your default editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := configPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return err
		}

		// Create the file with commented defaults if it doesn't exist
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			if err := os.WriteFile(configFile, []byte(defaultConfigFile), 0644); err != nil {
				return err
			}
		}

		// Get editor from environment
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			// Try common editors
			for _, e := range []string{"vim", "vi", "nano", "emacs"} {
				if _, err := exec.LookPath(e); err == nil {
					editor = e
					break
				}
			}
		}
		if editor == "" {
			return fmt.Errorf("no editor found; set $EDITOR or $VISUAL")
		}

		// Open editor
		editorCmd := exec.Command(editor, configFile)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr

		return editorCmd.Run()
	},
}

const defaultConfigFile = `# nomi configuration file

[theme]
# dark = false

[clipboard]
# enabled = true

[feedback]
# delay = "3s"
# strict = false
`

// flattenMap flattens a nested map into dot-notation keys
func flattenMap(prefix string, m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			// Recursively flatten nested maps
			nested := flattenMap(fullKey, v)
			for k, val := range nested {
				result[k] = val
			}
		case []interface{}:
			// Convert slice to string representation
			var items []string
			for _, item := range v {
				items = append(items, fmt.Sprintf("%v", item))
			}
			result[fullKey] = strings.Join(items, ", ")
		default:
			result[fullKey] = value
		}
	}

	return result
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}
