/*
Copyright © 2026 drakomut

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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/drakomut/srpgtran/internal/translator"
)

const defaultDBPath = "./data/srpgtran.db"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	cyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
)

// statusf writes a status line to stderr unless quiet is set.
func statusf(format string, args ...interface{}) {
	if viper.GetBool("quiet") {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// serviceOptions collects backend settings from flags, env and config.
func serviceOptions(name string) translator.Options {
	opts := translator.Options{
		Credentials: viper.GetString("credentials"),
		APIKey:      viper.GetString("api-key"),
		Email:       viper.GetString("mymemory-email"),
		Timeout:     viper.GetDuration("timeout"),
	}
	if name == "ollama" {
		opts.BaseURL = viper.GetString("ollama-url")
		opts.Model = viper.GetString("ollama-model")
	}
	return opts
}

// buildService constructs the translation backend selected by name.
func buildService(name string) (translator.TranslationService, error) {
	return translator.New(name, serviceOptions(name))
}

// closeService releases backends that hold a client.
func closeService(svc translator.TranslationService) {
	if c, ok := svc.(io.Closer); ok {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "%s failed to close %s client: %v\n", yellow("Warning:"), svc.Name(), err)
		}
	}
}
