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
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/drakomut/srpgtran/internal/translator"
)

var servicesFlags = []string{"credentials", "api-key", "ollama-url", "ollama-model", "mymemory-email"}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List translation services and whether they are usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, servicesFlags...); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tSTATUS")
		for _, name := range translator.Names() {
			status := green("available")

			svc, err := buildService(name)
			if err == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = svc.IsAvailable(ctx)
				cancel()
				closeService(svc)
			}
			if err != nil {
				status = red("unavailable: " + err.Error())
			}
			fmt.Fprintf(w, "%s\t%s\n", name, status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)

	servicesCmd.Flags().StringP("credentials", "c", "", "Path to Google Cloud credentials")
	servicesCmd.Flags().String("api-key", "", "Google Cloud Translation API key")
	servicesCmd.Flags().String("ollama-url", translator.DefaultOllamaURL, "Ollama base URL")
	servicesCmd.Flags().String("ollama-model", translator.DefaultOllamaModel, "Ollama model name")
	servicesCmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
}
