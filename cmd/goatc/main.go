package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/aledsdavies/goatlang/internal/compile"
	"github.com/aledsdavies/goatlang/internal/message"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Global flags
var (
	sourceFile string
	langFlag   string
	debug      bool
	dumpAST    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goatc [flags]",
	Short: "Compile Goat source to an AST and report diagnostics",
	Long: `goatc runs Goat's front end — scanner, bracket matcher, and reduction
engine — over a source file and reports any diagnostics it finds.
By default, it looks for main.goat in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runCompile,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display version, build time, and git commit information for goatc.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goatc %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFile, "file", "f", "main.goat", "Path to source file")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "en", "Diagnostic message locale (e.g. en, ru)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print scanner token-kind tallies to stderr")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "Print the resulting AST instead of just diagnostics")

	rootCmd.AddCommand(versionCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", sourceFile, err)
	}

	tag, err := language.Parse(langFlag)
	if err != nil {
		return fmt.Errorf("error parsing --lang %q: %w", langFlag, err)
	}

	result := compile.Compile(sourceFile, string(content), compile.Options{Lang: tag, Stats: debug})
	defer result.Release()

	if debug && result.Stats != nil {
		fmt.Fprintf(os.Stderr, "scanned %d tokens:\n", result.Stats.Total)
		for kind, count := range result.Stats.ByKind {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", kind, count)
		}
	}

	if !result.Errs.Empty() {
		fmt.Fprint(os.Stderr, result.Errs.Format(sourceFile, []rune(string(content)), message.New(tag)))
	}

	if result.Errs.HasCritical() {
		return fmt.Errorf("compilation failed")
	}

	if dumpAST && result.Root != nil {
		fmt.Println(result.Root.String())
	}

	return nil
}
