//go:build integration

package bottin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gostonefire/bottin/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFile string = "testdata/Bottin.txt"

func TestNewFromFile(t *testing.T) {
	t.Run("loads directory from file", func(t *testing.T) {
		// Execute
		d, err := NewFromFile(DirectoryConf{}, testFile, "")

		// Check
		require.NoError(t, err, "loads file")
		assert.Equal(t, 5, d.Count(), "every data line loaded")

		r, err := d.LookupByNameGiven("Adam", "Carl")
		assert.NoError(t, err, "found by name")
		assert.Equal(t, "(555) 111-2222", r.FixedPhone)

		r, err = d.LookupByPhone("(909) 787-4746")
		assert.NoError(t, err, "found by phone")
		assert.Equal(t, "Cote", r.Surname)

		nameStat := d.NameStat(true)
		assert.Equal(t, int64(5), nameStat.Insertions, "name insertions")
		var total int64
		for _, n := range nameStat.BucketDistribution {
			total += n
		}
		assert.Equal(t, int64(5), total, "distribution covers every entry")
	})

	t.Run("error when file does not exist", func(t *testing.T) {
		// Execute
		_, err := NewFromFile(DirectoryConf{}, "testdata/missing.txt", "")

		// Check
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("error when file is empty", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(fileName, nil, 0644))

		// Execute
		_, err := NewFromFile(DirectoryConf{}, fileName, "")

		// Check
		assert.ErrorIs(t, err, errs.SourceFormat{}, "missing header")
	})
}
