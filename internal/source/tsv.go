package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/bottin/errs"
	"github.com/gostonefire/bottin/internal/conf"
	"github.com/gostonefire/bottin/internal/model"
	"github.com/gostonefire/bottin/internal/utils"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported charsets for source files
const (
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
)

// Reader - Reads directory rows from tab separated text, one row per line after a header line.
// The name column holds "Surname, GivenName" and is split into its two parts.
type Reader struct {
	scanner *bufio.Scanner
	header  string
	line    int
	text    string
	pending bool
	err     error
}

// NewReader - Returns a pointer to a new Reader that has consumed the header line.
//   - r is the source text
//   - charset is either UTF8 (a leading byte order mark is dropped) or Windows1252, empty gives UTF8
//
// It returns:
//   - reader is a pointer to the created Reader
//   - err is of type errs.SourceFormat if there is no header line, otherwise a standard error
func NewReader(r io.Reader, charset string) (reader *Reader, err error) {
	decoder, err := newDecoder(charset)
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			err = fmt.Errorf("error while reading header: %w", err)
			return
		}
		err = errs.SourceFormat{Line: 1, Reason: "missing header line"}
		return
	}

	reader = &Reader{
		scanner: scanner,
		header:  strings.TrimSuffix(scanner.Text(), "\r"),
		line:    1,
	}

	return
}

// newDecoder - Returns the text decoder for charset
func newDecoder(charset string) (decoder transform.Transformer, err error) {
	var enc encoding.Encoding
	switch strings.ToLower(charset) {
	case "", UTF8, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case Windows1252, "cp1252", "latin1":
		enc = charmap.Windows1252
	default:
		err = fmt.Errorf("unsupported charset %q, use %s or %s", charset, UTF8, Windows1252)
		return
	}

	return enc.NewDecoder(), nil
}

// Header - Returns the discarded header line
func (R *Reader) Header() string {
	return R.header
}

// HasNext - Returns true if there are more rows to be fetched from a call to Next.
// A read error also counts as a row, it is returned by the following Next.
func (R *Reader) HasNext() bool {
	if R.pending {
		return true
	}

	for R.err == nil && R.scanner.Scan() {
		R.line++
		text := strings.TrimSuffix(R.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		R.text = text
		R.pending = true
		return true
	}

	if R.err == nil {
		if err := R.scanner.Err(); err != nil {
			R.err = fmt.Errorf("error while reading line %d: %w", R.line+1, err)
			R.pending = true
			return true
		}
	}

	return false
}

// Next - Returns the next row.
// It returns:
//   - row is the next row with surname and given name split apart.
//   - err is of type errs.SourceFormat if the line does not have the expected columns, errs.KeyNotFound when
//     there are no more rows, or a standard error if reading failed.
func (R *Reader) Next() (row model.Row, err error) {
	if !R.HasNext() {
		err = errs.KeyNotFound{}
		return
	}
	R.pending = false

	if R.err != nil {
		err = R.err
		return
	}

	columns := strings.Split(R.text, conf.ColumnSeparator)
	if len(columns) != conf.ColumnCount {
		err = errs.SourceFormat{
			Line:   R.line,
			Reason: fmt.Sprintf("expected %d tab separated columns, got %d", conf.ColumnCount, len(columns)),
		}
		return
	}

	row.Surname, row.GivenName = utils.SplitName(columns[0])
	row.FixedPhone = columns[1]
	row.MobilePhone = columns[2]
	row.Email = columns[3]
	row.Line = R.line

	return
}
