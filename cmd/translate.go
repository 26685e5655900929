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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drakomut/srpgtran/internal/fileproc"
	"github.com/drakomut/srpgtran/internal/store"
	"github.com/drakomut/srpgtran/internal/translator"
)

var inputFile string

var translateFlags = []string{
	"source", "target", "service", "credentials", "api-key",
	"ollama-url", "ollama-model", "mymemory-email", "timeout",
	"skip-keys", "protect-markup", "memory", "db", "quiet",
}

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a JSON, RPY or TXT file",
	Long: `Translate the text of one file and write <name>_translated.<ext> next to it.

Supported files:
  .json   every double-quoted string is translated (keys too, unless --skip-keys)
  .rpy    every non-blank line is translated
  .txt    every non-blank line is translated

Available services:
  - gtranslate  Google Translate web endpoint (default, no key needed)
  - google      Google Cloud Translation (requires credentials or API key)
  - mymemory    MyMemory (free, 5000 chars/day)
  - ollama      Ollama LLM (self-hosted)

Example:
  srpgtran translate game/script.rpy -s en -t de
  srpgtran translate data/items.json --service ollama --skip-keys
  srpgtran translate game/script.rpy --protect-markup --memory`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, translateFlags...); err != nil {
			return err
		}

		path := inputFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			fmt.Fprintf(os.Stderr, "%s Please choose a file to translate.\n", yellow("Warning:"))
			return errors.New("no input file given")
		}
		cmd.SilenceUsage = true

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		serviceName := viper.GetString("service")
		svc, err := buildService(serviceName)
		if err != nil {
			return err
		}
		defer closeService(svc)

		if viper.GetBool("memory") {
			dbPath := viper.GetString("db")
			if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
			db, err := store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
			svc = translator.WithMemory(svc, db)
			statusf("Using translation memory %s", dbPath)
		}

		job := fileproc.Job{
			Path:          path,
			SourceLang:    viper.GetString("source"),
			TargetLang:    viper.GetString("target"),
			SkipJSONKeys:  viper.GetBool("skip-keys"),
			ProtectMarkup: viper.GetBool("protect-markup"),
		}

		progress := newProgressReporter(viper.GetBool("quiet"), filepath.Base(path))
		job.Progress = progress.Update

		statusf("%s %s (%s → %s) with %s", cyan("Translating"), path, job.SourceLang, job.TargetLang, svc.Name())

		result, err := fileproc.Process(ctx, svc, job)
		progress.Finish()
		if err != nil {
			return err
		}

		fmt.Printf("%s The file was translated successfully: %s\n", green("✔"), result.OutputPath)
		statusf("Fragments translated: %d, passed through: %d", result.Translated, result.Skipped)
		if result.MarkupFallbacks > 0 {
			fmt.Fprintf(os.Stderr, "%s %d fragments kept untranslated because the service dropped their markup\n",
				yellow("Warning:"), result.MarkupFallbacks)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (alternative to the positional argument)")
	translateCmd.Flags().StringP("source", "s", "auto", "Source language code (auto = detect)")
	translateCmd.Flags().StringP("target", "t", "de", "Target language code")
	translateCmd.Flags().String("service", "gtranslate", "Translation service to use")
	translateCmd.Flags().StringP("credentials", "c", "", "Path to Google Cloud credentials")
	translateCmd.Flags().String("api-key", "", "Google Cloud Translation API key")
	translateCmd.Flags().String("ollama-url", translator.DefaultOllamaURL, "Ollama base URL")
	translateCmd.Flags().String("ollama-model", translator.DefaultOllamaModel, "Ollama model name")
	translateCmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
	translateCmd.Flags().Duration("timeout", 0, "Per-request HTTP timeout for mymemory/ollama (0 = service default)")
	translateCmd.Flags().Bool("skip-keys", false, "Do not translate JSON object keys")
	translateCmd.Flags().Bool("protect-markup", false, "Hide control codes, Ren'Py tags and format verbs from the service")
	translateCmd.Flags().Bool("memory", false, "Reuse and store translations in the SQLite translation memory")
	translateCmd.Flags().String("db", defaultDBPath, "Database path for translation memory")
	translateCmd.Flags().BoolP("quiet", "q", false, "Suppress progress bar and status lines")
}
