/*
Copyright © 2025 The GoogleTranslateFreeApi Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/translator"
)

var version = "1.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gtfree",
	Short: "Keyless Google Translate client",
	Long: `A client for the free, undocumented Google Translate web endpoint.

It forges the per-request signing token the endpoint expects, maintains the
session cookie, and decodes the positional JSON response into translations,
transcriptions, corrections, synonyms, definitions, and related terms.
No API key is required.

Use "gtfree translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.gtfree.yaml)")
	rootCmd.PersistentFlags().String("domain", translator.DefaultDomain, "translation endpoint domain")
	rootCmd.PersistentFlags().String("proxy", "", "proxy URL for outgoing requests")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "time limit applied to every outgoing request")

	viper.BindPFlag("domain", rootCmd.PersistentFlags().Lookup("domain"))
	viper.BindPFlag("proxy", rootCmd.PersistentFlags().Lookup("proxy"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".gtfree")
		}
	}

	viper.SetEnvPrefix("GTFREE")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// clientConfig assembles the translator configuration from flags, env, and
// the config file.
func clientConfig() translator.Config {
	return translator.Config{
		Domain:  viper.GetString("domain"),
		Proxy:   viper.GetString("proxy"),
		Timeout: viper.GetDuration("timeout"),
	}
}
