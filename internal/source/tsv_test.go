//go:build unit

package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Nom\tTelephone\tCellulaire\tCourriel\n"

func TestNewReader(t *testing.T) {
	t.Run("consumes header line", func(t *testing.T) {
		// Execute
		reader, err := NewReader(strings.NewReader(header), "")

		// Check
		assert.NoError(t, err, "creates reader")
		assert.Equal(t, "Nom\tTelephone\tCellulaire\tCourriel", reader.Header(), "header kept aside")
		assert.False(t, reader.HasNext(), "no rows")
	})

	t.Run("error when there is no header", func(t *testing.T) {
		// Execute
		_, err := NewReader(strings.NewReader(""), "")

		// Check
		assert.ErrorIs(t, err, errs.SourceFormat{}, "get correct error")
	})

	t.Run("error on unsupported charset", func(t *testing.T) {
		// Execute
		_, err := NewReader(strings.NewReader(header), "ebcdic")

		// Check
		assert.Error(t, err)
	})

	t.Run("drops utf-8 byte order mark", func(t *testing.T) {
		// Execute
		reader, err := NewReader(strings.NewReader("\ufeff"+header), UTF8)

		// Check
		assert.NoError(t, err, "creates reader")
		assert.True(t, strings.HasPrefix(reader.Header(), "Nom"), "no BOM in header")
	})
}

func TestReader_Next(t *testing.T) {
	t.Run("reads and splits rows", func(t *testing.T) {
		// Prepare
		text := header +
			"Adam, Carl\t(555) 111-2222\t(555) 333-4444\tadam.carl@example.com\r\n" +
			"\n" +
			"Cote, Jean\t(909) 787-4746\t(909) 787-1000\tjean.cote@example.com\n"
		reader, err := NewReader(strings.NewReader(text), "")
		require.NoError(t, err)

		// Execute
		rows, err := ReadAll(reader)

		// Check
		assert.NoError(t, err, "reads all rows")
		assert.Equal(t, []model.Row{
			{Surname: "Adam", GivenName: "Carl", FixedPhone: "(555) 111-2222", MobilePhone: "(555) 333-4444", Email: "adam.carl@example.com", Line: 2},
			{Surname: "Cote", GivenName: "Jean", FixedPhone: "(909) 787-4746", MobilePhone: "(909) 787-1000", Email: "jean.cote@example.com", Line: 4},
		}, rows, "correct rows")
	})

	t.Run("name without comma gives empty given name", func(t *testing.T) {
		// Prepare
		text := header + "Adam\t(555) 111-2222\t(555) 333-4444\tadam@example.com\n"
		reader, err := NewReader(strings.NewReader(text), "")
		require.NoError(t, err)

		// Execute
		row, err := reader.Next()

		// Check
		assert.NoError(t, err)
		assert.Equal(t, "Adam", row.Surname, "whole token is surname")
		assert.Equal(t, "", row.GivenName, "empty given name")
	})

	t.Run("error on wrong column count", func(t *testing.T) {
		// Prepare
		text := header + "Adam, Carl\t(555) 111-2222\tadam.carl@example.com\n"
		reader, err := NewReader(strings.NewReader(text), "")
		require.NoError(t, err)

		// Execute
		_, err = reader.Next()

		// Check
		assert.ErrorIs(t, err, errs.SourceFormat{}, "get correct error")
		var sf errs.SourceFormat
		require.True(t, errors.As(err, &sf))
		assert.Equal(t, 2, sf.Line, "line reported")
	})

	t.Run("decodes windows-1252", func(t *testing.T) {
		// Prepare
		text := header + "C\xf4t\xe9, Ren\xe9e\t(555) 111-2222\t(555) 333-4444\trenee@example.com\n"
		reader, err := NewReader(strings.NewReader(text), Windows1252)
		require.NoError(t, err)

		// Execute
		row, err := reader.Next()

		// Check
		assert.NoError(t, err)
		assert.Equal(t, "Côté", row.Surname, "decoded surname")
		assert.Equal(t, "Renée", row.GivenName, "decoded given name")
	})

	t.Run("throws correct error when no more rows", func(t *testing.T) {
		// Prepare
		reader, err := NewReader(strings.NewReader(header), "")
		require.NoError(t, err)

		// Execute
		_, err = reader.Next()

		// Check
		assert.ErrorIs(t, err, errs.KeyNotFound{}, "get correct error")
	})
}

func TestSlice(t *testing.T) {
	t.Run("serves rows in order", func(t *testing.T) {
		// Prepare
		rows := []model.Row{{Surname: "Adam"}, {Surname: "Beaulieu"}}
		s := NewSlice(rows)

		// Execute
		got, err := ReadAll(s)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, rows, got, "same rows")
		assert.False(t, s.HasNext(), "exhausted")
		_, err = s.Next()
		assert.ErrorIs(t, err, errs.KeyNotFound{}, "get correct error")
	})
}
