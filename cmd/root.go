package cmd

import (
	"fmt"
	"os"

	"funcsplit/internal/config"
	"funcsplit/internal/extractor"
	"funcsplit/internal/splitter"

	"github.com/spf13/cobra"
)

// Version info, set from main via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "funcsplit",
	Short: "Split JS/TS source files into one file per top-level function",
	Long:  "A CLI tool that extracts top-level function declarations from JavaScript/TypeScript source and writes each one to its own file named after the function",
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Extract top-level functions and write one file per function",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load shared config (~/.funcsplit/config.json) so FUNCSPLIT_*
		// defaults from that file are visible as env vars when running via CLI.
		if err := config.LoadFromUserConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		}

		input, _ := cmd.Flags().GetString("input")
		out, _ := cmd.Flags().GetString("out")
		ext, _ := cmd.Flags().GetString("ext")

		if input == "" {
			return fmt.Errorf("--input is required")
		}
		if out == "" {
			out = config.Get("FUNCSPLIT_OUT_DIR")
		}
		if ext == "" {
			ext = config.Get("FUNCSPLIT_EXT")
		}

		info, err := os.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input not found at %q", input)
			}
			return err
		}

		s := splitter.New(out, ext)
		if info.IsDir() {
			fmt.Printf("→ Splitting source files under: %s\n", input)
			return s.SplitDir(input)
		}
		fmt.Printf("→ Splitting functions from: %s\n", input)
		return s.SplitFile(input)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level functions without writing any files",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			return fmt.Errorf("--input is required")
		}

		data, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input not found at %q", input)
			}
			return fmt.Errorf("failed to read input file: %w", err)
		}

		functions, warnings := extractor.Extract(string(data))
		splitter.ReportWarnings(warnings)

		if len(functions) == 0 {
			fmt.Printf("⚠ No top-level functions found in %s\n", input)
			return nil
		}
		for _, fn := range functions {
			fmt.Printf("%s (lines %d-%d)\n", fn.Name, fn.StartLine, fn.EndLine)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("funcsplit %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
	},
}

func init() {
	splitCmd.Flags().StringP("input", "i", "", "Input source file or directory")
	splitCmd.Flags().StringP("out", "o", "", "Output directory (default: alongside the input)")
	splitCmd.Flags().String("ext", "", "Output file extension (default: the input file's extension)")
	listCmd.Flags().StringP("input", "i", "", "Input source file")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
