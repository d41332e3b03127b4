// Package importer reads the admin player CSV and turns each row into a
// player with freshly derived stats.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"spirit11/internal/domain"
	"spirit11/internal/stats"
)

var Header = []string{
	"Name", "University", "Category",
	"Total Runs", "Balls Faced", "Innings Played",
	"Wickets", "Overs Bowled", "Runs Conceded",
}

var (
	ErrEmpty           = errors.New("csv has no player rows")
	ErrColumnCount     = errors.New("wrong number of columns")
	ErrNotANumber      = errors.New("not a whole number")
	ErrNegative        = errors.New("must not be negative")
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingName     = errors.New("name is required")
	ErrMalformed       = errors.New("malformed csv")
)

// RowError points at the offending line (1-based, header included) and
// column of a rejected row.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, %s: %s", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Parse reads every row after the header. The whole input is rejected on
// the first malformed row, so callers never persist a partial import. When
// a name and university pair repeats, the last row wins and keeps the
// position of the first.
func Parse(r io.Reader) ([]domain.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var players []domain.Player
	seen := make(map[[2]string]int)
	for first := true; ; first = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if first || isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		p, err := parseRow(line, record)
		if err != nil {
			return nil, err
		}
		// a repeated name and university replaces the earlier row
		key := [2]string{p.Name, p.University}
		if i, ok := seen[key]; ok {
			players[i] = p
			continue
		}
		seen[key] = len(players)
		players = append(players, p)
	}
	if len(players) == 0 {
		return nil, ErrEmpty
	}
	return players, nil
}

// ParseString is Parse over an in-memory CSV document.
func ParseString(s string) ([]domain.Player, error) {
	return Parse(strings.NewReader(s))
}

func parseRow(line int, record []string) (domain.Player, error) {
	if len(record) != len(Header) {
		return domain.Player{}, &RowError{Line: line, Err: fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(record), len(Header))}
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return domain.Player{}, &RowError{Line: line, Column: Header[0], Err: ErrMissingName}
	}
	category := domain.Category(strings.TrimSpace(record[2]))
	if !category.Valid() {
		return domain.Player{}, &RowError{Line: line, Column: Header[2], Err: fmt.Errorf("%w: %q", ErrUnknownCategory, category)}
	}

	var counters [6]int
	for j := range counters {
		col := 3 + j
		n, err := strconv.Atoi(strings.TrimSpace(record[col]))
		if err != nil {
			return domain.Player{}, &RowError{Line: line, Column: Header[col], Err: fmt.Errorf("%w: %q", ErrNotANumber, record[col])}
		}
		if n < 0 {
			return domain.Player{}, &RowError{Line: line, Column: Header[col], Err: ErrNegative}
		}
		counters[j] = n
	}

	p := domain.Player{
		Name:       name,
		University: strings.TrimSpace(record[1]),
		Category:   category,
		Stats: domain.PlayerStats{RawStats: domain.RawStats{
			TotalRuns:     counters[0],
			BallsFaced:    counters[1],
			InningsPlayed: counters[2],
			Wickets:       counters[3],
			OversBowled:   counters[4],
			RunsConceded:  counters[5],
		}},
	}
	stats.Apply(&p)
	return p, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
