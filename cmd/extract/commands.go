package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

func newRootCmd() *cobra.Command {
	var format string

	rootCmd := &cobra.Command{
		Use:           "extract",
		Short:         "Run the transcript and FAQ extraction engine on pasted text",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Output format (json/yaml)")

	rootCmd.AddCommand(splitCmd(&format))
	rootCmd.AddCommand(transcriptCmd())
	rootCmd.AddCommand(chaptersCmd(&format))
	rootCmd.AddCommand(faqsCmd(&format))

	return rootCmd
}

func splitCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "split [file]",
		Short: "Split a transcript into timed lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), *format, extract.Split(raw))
		},
	}
}

func transcriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcript [file]",
		Short: "Render a transcript as escaped HTML",
		Long:  `Prints the HTML fragment as is; --format does not apply.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), extract.RenderTranscript(raw))
			return err
		},
	}
}

func chaptersCmd(format *string) *cobra.Command {
	var maxWords, maxRunes int

	cmd := &cobra.Command{
		Use:   "chapters [file]",
		Short: "Synthesize chapter markers from timed lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			e := extract.New(extract.Options{ChapterMaxWords: maxWords, ChapterMaxRunes: maxRunes})
			return write(cmd.OutOrStdout(), *format, e.Chapters(raw))
		},
	}

	cmd.Flags().IntVar(&maxWords, "max-words", extract.DefaultChapterMaxWords, "Words kept per label")
	cmd.Flags().IntVar(&maxRunes, "max-runes", extract.DefaultChapterMaxRunes, "Characters kept per label before the ellipsis")

	return cmd
}

func faqsCmd(format *string) *cobra.Command {
	var maxPairs int

	cmd := &cobra.Command{
		Use:   "faqs [file]",
		Short: "Extract question/answer pairs",
		Long:  `Reads Q:/A: (or คำถาม:/คำตอบ:) markers, falling back to lines ending in a question mark.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if maxPairs < 0 {
				return fmt.Errorf("--max must not be negative")
			}
			return write(cmd.OutOrStdout(), *format, extract.ExtractFAQs(raw, maxPairs))
		},
	}

	cmd.Flags().IntVar(&maxPairs, "max", extract.DefaultFAQMax, "Maximum number of pairs")

	return cmd
}

// readInput reads the named file, or stdin when no file or "-" is given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func write(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
