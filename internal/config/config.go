package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires viper with the config search path, HSIZE_* environment and
// persistent-flag bindings. It is non-fatal: a missing config file is fine.
func Init(root *cobra.Command) error {
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "hsize"))
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	viper.SetEnvPrefix("HSIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("system", root.PersistentFlags().Lookup("system"))
	_ = viper.BindPFlag("locale", root.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("si", root.PersistentFlags().Lookup("si"))

	_ = viper.ReadInConfig()

	return nil
}
