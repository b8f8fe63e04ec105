package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gostonefire/bottin"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/hash"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	fileName      string
	capacity      int64
	hashAlgorithm string
	charset       string
	verbose       bool
	quiet         bool
	jsonOut       bool
)

// errLoad marks failures to build the directory, they exit with their own status
var errLoad = errors.New("directory could not be loaded")

var rootCmd = &cobra.Command{
	Use:   "bottin",
	Short: "Query a phone directory indexed by name and by phone number",
	Long: `bottin loads a tab separated phone directory (one header line, then
"Surname, GivenName", fixed phone, mobile phone and email per line) into two
fixed size hash tables and reports lookups and collision statistics.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileName, "file", "f", "Bottin.txt", "Directory file to load")
	rootCmd.PersistentFlags().Int64VarP(&capacity, "capacity", "c", conf.DefaultCapacity, "Number of buckets in each hash table")
	rootCmd.PersistentFlags().
		StringVar(&hashAlgorithm, "hash", hash.Default, fmt.Sprintf("Bucket selection algorithm %v", hash.Names()))
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "utf-8", "Encoding of the directory file (utf-8, windows-1252)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		if errors.Is(err, errLoad) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// directoryConf returns the directory configuration given by the global flags
func directoryConf() bottin.DirectoryConf {
	return bottin.DirectoryConf{Capacity: capacity, HashAlgorithm: hashAlgorithm}
}

// loadDirectory builds the directory from the file given by the global flags
func loadDirectory() (*bottin.Directory, error) {
	printVerbose("Loading %s (capacity %d, hash %s)\n", fileName, capacity, hashAlgorithm)
	d, err := bottin.NewFromFile(directoryConf(), fileName, charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errLoad, err)
	}
	printVerbose("Loaded %d records\n", d.Count())
	return d, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
