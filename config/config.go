// Package config holds the settings shared by the converters that do not
// come from the input files.
package config

import (
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

// DefaultApp is written to meta.app unless overridden.
const DefaultApp = "https://github.com/adamlwgriffiths/dfe_to_tp_pixi"

// AppEnv names the environment variable overriding DefaultApp.
const AppEnv = "DFEATLAS_APP"

// LoadEnv reads a .env file from the working directory, if there is one.
// Variables already set in the environment are not replaced.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			glog.Warningf("reading .env: %v", err)
		}
		return
	}
	glog.V(1).Infof("loaded .env")
}

// App picks the meta.app value: the flag if set, then the environment, then
// DefaultApp.
func App(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(AppEnv); v != "" {
		return v
	}
	return DefaultApp
}
