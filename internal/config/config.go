package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Init wires the configuration sources: an optional explicit file, else
// ~/.config/photodater/config.toml, with PHOTODATER_* environment
// variables (and a local .env) overriding file values.
func Init(cfgFile string) {
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "photodater"))
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("photodater")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("rename.max_interval", 0)
	viper.SetDefault("output.verbose", false)
	viper.SetDefault("scan.extensions", []string{})
}

// RenameMaxInterval is the default for --max-interval: the widest
// content range, in days, rename will still stamp onto a directory.
func RenameMaxInterval() int {
	return viper.GetInt("rename.max_interval")
}

// Verbose is the default for --verbose.
func Verbose() bool {
	return viper.GetBool("output.verbose")
}

// ScanExtensions overrides which file extensions are probed for
// metadata. Empty means the built-in photo extensions.
func ScanExtensions() []string {
	return viper.GetStringSlice("scan.extensions")
}
