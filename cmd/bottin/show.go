package main

import (
	"os"

	"github.com/gostonefire/bottin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every record followed by the statistics",
		Long: `The show command loads the directory, prints every record in file order as
"surname, given name, fixed phone, mobile phone, email", then the number of
records and the collision statistics of both indices.

Example:
  bottin show -f Bottin.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow()
		},
	}
	return cmd
}

func runShow() error {
	d, err := loadDirectory()
	if err != nil {
		return err
	}

	if jsonOut {
		var records []bottin.Record
		iter := d.Records()
		for iter.HasNext() {
			r, err := iter.Next()
			if err != nil {
				return err
			}
			records = append(records, r)
		}
		return printJSON(records)
	}

	if !quiet {
		printInfo("Directory contents:\n")
		if err = d.Print(os.Stdout); err != nil {
			return err
		}
	}

	printInfo("\nNumber of records: %d\n", d.Count())
	printTableStat("names", d.NameStat(false))
	printTableStat("phones", d.PhoneStat(false))

	return nil
}
