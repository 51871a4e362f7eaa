// Package statement parses uploaded account statement CSVs into
// spending entries. The column layout is auto-detected by matching
// headers against known profiles, so users never have to say which
// export they are uploading.
package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/linhares06/expensetracker-app/internal/encoding"
)

// ErrUnknownLayout reports a file whose headers match no known export.
var ErrUnknownLayout = errors.New("no recognizable statement layout")

// Entry is one statement line. Amount is always the absolute value;
// Credit marks money coming in rather than spending.
type Entry struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Credit      bool
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	// Layouts differ in field separator as well as columns, so each
	// candidate separator gets its own pass.
	for _, comma := range []rune{';', ','} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		prof, cols, headerIdx := detectProfile(rows)
		if prof == nil {
			continue
		}

		return parseRows(prof, cols, rows[headerIdx+1:], headerIdx)
	}

	return nil, ErrUnknownLayout
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// colIndex maps column names to their position in the row.
type colIndex map[string]int

// detectProfile scans rows for a header matching a known profile.
// Statements often open with preamble lines (account numbers, balances)
// before the real header, so every row is a candidate.
func detectProfile(rows [][]string) (*profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if profiles[i].matches(cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// parseRows extracts entries from the data rows below the header. Rows
// without a parseable date are footers or filler and are skipped.
// headerRowNum is the 0-based header index, kept for error messages.
func parseRows(p *profile, cols colIndex, rows [][]string, headerRowNum int) ([]Entry, error) {
	dateIdx := cols[p.dateCol]
	descIdx := cols[p.descCol]

	var entries []Entry

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, after the header

		date, ok := parseDate(row, dateIdx, p.dateLayout)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, credit, ok := p.amount(cols, row)
		if !ok {
			continue
		}

		entries = append(entries, Entry{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Credit:      credit,
		})
	}

	return entries, nil
}

func parseDate(row []string, idx int, layout string) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// cellValue safely gets a trimmed cell from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
