// Package app provides the application initialization and wiring.
package app

import (
	"github.com/spf13/viper"
)

// ConfigureViper sets up viper with standard config file search paths.
// Config file: platelens.toml
// Search paths (in order): /etc/platelens, ~/.config/platelens, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("platelens")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/platelens")
		v.AddConfigPath("$HOME/.config/platelens")
		v.AddConfigPath(".")
	}
}
