package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jward/menagerie"
)

var (
	flagDB      string
	flagFormat  string
	flagVerbose bool
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "menagerie",
	Short:         "A teaching zoo: animals, a persistent roster, and Fibonacci",
	Long:          "Menagerie keeps a SQLite-backed roster of animals (generic, dog, cat), has them speak, and prints Fibonacci prefixes.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default: menagerie.db in the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(fibCmd)
	rootCmd.AddCommand(resetCmd)
}

// validateFormat checks the --format flag.
func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("invalid format %q (expected json or text)", format)
	}
}

// resolveDBPath returns the database path from the --db flag or the default.
func resolveDBPath() string {
	if flagDB != "" {
		return flagDB
	}
	return filepath.Join(".", "menagerie.db")
}

// openKeeper opens the roster database, wiring in a development
// logger when --verbose is set.
func openKeeper() (*menagerie.Keeper, error) {
	var opts []menagerie.Option
	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		opts = append(opts, menagerie.WithLogger(logger))
	}
	k, err := menagerie.Open(resolveDBPath(), opts...)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	return k, nil
}

// parseAge parses and validates a CLI age argument.
func parseAge(value string) (int, error) {
	age, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", value, err)
	}
	if age < 0 {
		return 0, fmt.Errorf("invalid age %d: must be non-negative", age)
	}
	return age, nil
}

var addCmd = &cobra.Command{
	Use:   "add <species> <name> <age>",
	Short: "Admit an animal to the roster",
	Long:  "Adds an animal (species: animal, dog, or cat) to the persistent roster and prints its assigned tag.",
	Args:  cobra.ExactArgs(3),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	species, name := args[0], args[1]
	age, err := parseAge(args[2])
	if err != nil {
		return outputError("add", err)
	}

	a, err := menagerie.NewBySpecies(species, name, age)
	if err != nil {
		return outputError("add", err)
	}

	k, err := openKeeper()
	if err != nil {
		return outputError("add", err)
	}
	defer k.Close()

	rec, err := k.Admit(a)
	if err != nil {
		return outputError("add", err)
	}

	return outputResult(CLIResult{
		Command: "add",
		Results: []CLIAnimal{animalToCLI(rec)},
	})
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the animals on the roster",
	Long:  "Prints the roster in admission order. Text mode prints the zoo's one-line name listing; JSON mode prints full records.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	k, err := openKeeper()
	if err != nil {
		return outputError("list", err)
	}
	defer k.Close()

	if flagFormat == "text" {
		z, err := k.Zoo(menagerie.WithOutput(os.Stdout))
		if err != nil {
			return outputError("list", err)
		}
		if err := z.ListAnimalNames(); err != nil {
			return outputError("list", err)
		}
		return nil
	}

	records, err := k.Store().Animals()
	if err != nil {
		return outputError("list", err)
	}
	return outputResult(CLIResult{
		Command: "list",
		Results: animalsToCLI(records),
	})
}

var speakCmd = &cobra.Command{
	Use:   "speak [name]",
	Short: "Have roster animals speak",
	Long:  "Every animal on the roster speaks its line in admission order. With a name argument, only animals with that name speak.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpeak,
}

func runSpeak(cmd *cobra.Command, args []string) error {
	k, err := openKeeper()
	if err != nil {
		return outputError("speak", err)
	}
	defer k.Close()

	z, err := k.Zoo(menagerie.WithOutput(os.Stdout))
	if err != nil {
		return outputError("speak", err)
	}

	if len(args) == 0 {
		if err := z.SpeakAll(); err != nil {
			return outputError("speak", err)
		}
		return nil
	}

	name := args[0]
	spoke := false
	for _, a := range z.Animals() {
		if a.Name() != name {
			continue
		}
		if err := a.Speak(os.Stdout); err != nil {
			return outputError("speak", err)
		}
		spoke = true
	}
	if !spoke {
		return outputError("speak", fmt.Errorf("no animal named %q on the roster", name))
	}
	return nil
}

var (
	flagFibUnder int64
	flagFibTerms int
)

var fibCmd = &cobra.Command{
	Use:   "fib",
	Short: "Print a Fibonacci prefix",
	Long:  "Prints Fibonacci numbers either strictly below a bound (--under) or as a fixed number of terms (--terms).",
	Args:  cobra.NoArgs,
	RunE:  runFib,
}

func init() {
	fibCmd.Flags().Int64Var(&flagFibUnder, "under", -1, "print all terms strictly less than this bound")
	fibCmd.Flags().IntVar(&flagFibTerms, "terms", -1, "print this many terms")
}

func runFib(cmd *cobra.Command, args []string) error {
	underSet := cmd.Flags().Changed("under")
	termsSet := cmd.Flags().Changed("terms")
	if underSet == termsSet {
		return outputError("fib", fmt.Errorf("exactly one of --under or --terms is required"))
	}

	var (
		terms []int64
		err   error
	)
	if underSet {
		terms, err = menagerie.GenerateFibonacci(flagFibUnder)
	} else {
		terms, err = menagerie.FibonacciTerms(flagFibTerms)
	}
	if err != nil {
		return outputError("fib", err)
	}

	if flagFormat == "text" {
		formatTermsText(os.Stdout, terms)
		return nil
	}
	return outputResult(CLIResult{
		Command: "fib",
		Results: terms,
	})
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the roster",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	k, err := openKeeper()
	if err != nil {
		return outputError("reset", err)
	}
	defer k.Close()

	if err := k.Reset(); err != nil {
		return outputError("reset", err)
	}
	if flagFormat == "text" {
		fmt.Fprintln(os.Stderr, "Roster cleared.")
		return nil
	}
	return outputResult(CLIResult{Command: "reset"})
}
