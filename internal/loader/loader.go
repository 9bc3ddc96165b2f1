package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wishtracker/internal/icons"
	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

var (
	ErrInputNotFound = errors.New("wish input file not found")
	ErrMissingColumn = errors.New("input missing required column")
)

// requiredColumns are the CSV columns every wish row must provide.
var requiredColumns = []string{"Name", "Source", "Completion_Type"}

// Result reports what a load run did.
type Result struct {
	Loaded       int            `json:"loaded"`
	IconsFound   int            `json:"icons_found"`
	Placeholders int            `json:"placeholders"`
	BySource     map[string]int `json:"by_source"`
}

// Loader reads wish definitions from a delimited text file, resolves each
// wish's icon, and replaces the entire wish table with the result.
//
// Replacing wishes cascades away every progress row for every save, so both
// entrypoints (CLI and HTTP) require an explicit confirmation before calling
// Load.
type Loader struct {
	wishes   repository.WishRepository
	resolver *icons.Resolver
}

func New(wishes repository.WishRepository, resolver *icons.Resolver) *Loader {
	return &Loader{
		wishes:   wishes,
		resolver: resolver,
	}
}

// LoadFromFile loads wishes from the CSV file at path. It fails before any
// existing wish is deleted: a missing file, missing column, or malformed row
// aborts with the store untouched.
func (l *Loader) LoadFromFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	return l.Load(file)
}

// Load parses a CSV stream with a header row and replaces the wish table
// with its rows, in file order. Extra columns are ignored.
func (l *Loader) Load(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	getCol := func(row []string, col string) string {
		i := colIdx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &Result{BySource: make(map[string]int)}
	var wishes []*model.Wish

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", result.Loaded+2, err)
		}

		name := getCol(row, "Name")
		source := getCol(row, "Source")
		completionType := getCol(row, "Completion_Type")

		iconName := l.resolver.Resolve(name)
		if iconName != icons.Placeholder {
			result.IconsFound++
		} else {
			result.Placeholders++
		}

		wishes = append(wishes, &model.Wish{
			Name:           name,
			Source:         source,
			CompletionType: completionType,
			IconName:       iconName,
		})

		result.Loaded++
		result.BySource[source]++
	}

	err = l.wishes.ReplaceAll(wishes)
	if err != nil {
		return nil, fmt.Errorf("failed to replace wishes: %w", err)
	}

	return result, nil
}
