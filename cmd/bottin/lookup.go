package main

import (
	"errors"
	"fmt"

	"github.com/gostonefire/bottin"
	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/utils"
	"github.com/spf13/cobra"
)

var (
	lookupName  string
	lookupPhone string
)

func init() {
	cmd := newLookupCmd()
	cmd.Flags().StringVar(&lookupName, "name", "", `Find by "Surname, GivenName"`)
	cmd.Flags().StringVar(&lookupPhone, "phone", "", `Find by fixed phone, "(ddd) ddd-dddd"`)
	cmd.MarkFlagsOneRequired("name", "phone")
	rootCmd.AddCommand(cmd)
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find a record by name or by fixed phone",
		Long: `The lookup command loads the directory and finds records by name, by fixed
phone, or both. A record that is not found is reported and is not an error.

Example:
  bottin lookup -f Bottin.txt --name "Adam, Carl"
  bottin lookup -f Bottin.txt --phone "(909) 787-4746"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup()
		},
	}
	return cmd
}

// LookupResult is the JSON shape of one lookup
type LookupResult struct {
	By     string         `json:"by"`
	Key    string         `json:"key"`
	Found  bool           `json:"found"`
	Record *bottin.Record `json:"record,omitempty"`
}

func runLookup() error {
	d, err := loadDirectory()
	if err != nil {
		return err
	}

	var results []LookupResult
	if lookupName != "" {
		surname, givenName := utils.SplitName(lookupName)
		r, err := d.LookupByNameGiven(surname, givenName)
		result, err := toResult("name", lookupName, r, err)
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	if lookupPhone != "" {
		r, err := d.LookupByPhone(lookupPhone)
		result, err := toResult("phone", lookupPhone, r, err)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if jsonOut {
		return printJSON(results)
	}

	for _, result := range results {
		if result.Found {
			fmt.Printf("Found for %s '%s': %s\n", result.By, result.Key, bottin.FormatRecord(*result.Record))
		} else {
			fmt.Printf("No record for %s '%s'\n", result.By, result.Key)
		}
	}

	return nil
}

// toResult turns a lookup outcome into a result, only errors other than not found are passed on
func toResult(by, key string, record bottin.Record, err error) (LookupResult, error) {
	result := LookupResult{By: by, Key: key}
	switch {
	case err == nil:
		result.Found = true
		result.Record = &record
	case errors.Is(err, errs.KeyNotFound{}):
	default:
		return result, err
	}
	return result, nil
}
