package main

import (
	"github.com/gostonefire/bottin"
	"github.com/spf13/cobra"
)

var (
	statsDistribution bool
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().BoolVar(&statsDistribution, "distribution", false, "Include the number of entries in every bucket")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collision statistics of both indices",
		Long: `The stats command loads the directory and shows, for the name index and the
phone index, the number of insertions, the total number of collisions, the
collisions per insertion and the most collisions seen by a single insertion.

Example:
  bottin stats -f Bottin.txt
  bottin stats -f Bottin.txt --capacity 1009 --hash crc32
  bottin stats -f Bottin.txt --distribution --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

// IndexStats is the JSON shape of the stats command
type IndexStats struct {
	Records int              `json:"records"`
	Name    bottin.TableStat `json:"name"`
	Phone   bottin.TableStat `json:"phone"`
}

func runStats() error {
	d, err := loadDirectory()
	if err != nil {
		return err
	}

	stats := IndexStats{
		Records: d.Count(),
		Name:    d.NameStat(statsDistribution),
		Phone:   d.PhoneStat(statsDistribution),
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Number of records: %d\n", stats.Records)
	printTableStat("names", stats.Name)
	printTableStat("phones", stats.Phone)

	return nil
}

// printTableStat prints one statistics block
func printTableStat(title string, stat bottin.TableStat) {
	printInfo("\nStatistics for %s:\n", title)
	printInfo("Collision ratio: %g\n", stat.Ratio)
	printInfo("Number of collisions: %d\n", stat.Collisions)
	printInfo("Max collisions in one insertion: %d\n", stat.MaxCollisionsSingleInsertion)
	if stat.BucketDistribution != nil {
		printInfo("Bucket distribution: %v\n", stat.BucketDistribution)
	}
}
