package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gostonefire/bottin"
	"github.com/gostonefire/bottin/internal/hash"
	"github.com/gostonefire/bottin/internal/source"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(newCompareCmd())
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare collision statistics of every hash algorithm",
		Long: `The compare command reads the directory file once, then builds one directory
per available hash algorithm with the same capacity and prints their collision
statistics side by side.

Example:
  bottin compare -f Bottin.txt --capacity 211`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context())
		},
	}
	return cmd
}

// AlgorithmStats is the JSON shape of one compare line
type AlgorithmStats struct {
	HashAlgorithm string           `json:"hashAlgorithm"`
	Name          bottin.TableStat `json:"name"`
	Phone         bottin.TableStat `json:"phone"`
}

func runCompare(ctx context.Context) error {
	rows, err := readRows()
	if err != nil {
		return fmt.Errorf("%w: %w", errLoad, err)
	}

	names := hash.Names()
	results := make([]AlgorithmStats, len(names))

	// Every goroutine owns its own directory
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := bottin.NewFromSource(bottin.DirectoryConf{Capacity: capacity, HashAlgorithm: name}, source.NewSlice(rows))
			if err != nil {
				return fmt.Errorf("%w: %s: %w", errLoad, name, err)
			}
			results[i] = AlgorithmStats{HashAlgorithm: name, Name: d.NameStat(false), Phone: d.PhoneStat(false)}
			printVerbose("Built directory with %s\n", name)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(results)
	}

	if quiet {
		return nil
	}
	fmt.Printf("%d records, capacity %d\n\n", len(rows), capacity)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tNAME RATIO\tNAME COLL\tNAME MAX\tPHONE RATIO\tPHONE COLL\tPHONE MAX")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.3f\t%d\t%d\t%.3f\t%d\t%d\n",
			r.HashAlgorithm,
			r.Name.Ratio, r.Name.Collisions, r.Name.MaxCollisionsSingleInsertion,
			r.Phone.Ratio, r.Phone.Collisions, r.Phone.MaxCollisionsSingleInsertion)
	}
	return tw.Flush()
}

// readRows reads every row of the file given by the global flags
func readRows() ([]bottin.Row, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	reader, err := source.NewReader(file, charset)
	if err != nil {
		return nil, err
	}
	return source.ReadAll(reader)
}
