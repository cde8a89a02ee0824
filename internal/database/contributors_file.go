package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m-zajac/ghcontributors/internal/app"
)

var contributorsHeader = []string{"login", "contributions"}

// ContributorsFile stores contributors list in a flat comma separated file.
// Each Write truncates the file.
type ContributorsFile struct {
	path   string
	header bool
}

var _ app.ContributorsStore = &ContributorsFile{}

// NewContributorsFile creates new ContributorsFile instance.
// If header is true, "login,contributions" row is written before records.
func NewContributorsFile(path string, header bool) *ContributorsFile {
	return &ContributorsFile{
		path:   path,
		header: header,
	}
}

// Path returns file path.
func (f *ContributorsFile) Path() string {
	return f.path
}

// Write overwrites file with given contributors, in given order.
func (f *ContributorsFile) Write(contributors []app.Contributor) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	w := csv.NewWriter(file)
	if f.header {
		if err := w.Write(contributorsHeader); err != nil {
			file.Close()
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, c := range contributors {
		if err := w.Write([]string{c.Login, strconv.Itoa(c.Contributions)}); err != nil {
			file.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flushing records: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	return nil
}

// Read returns contributors saved in file. Header row is skipped if present.
// Returns empty list if file doesn't exist yet.
func (f *ContributorsFile) Read() ([]app.Contributor, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []app.Contributor{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(contributorsHeader)

	contributors := make([]app.Contributor, 0)
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if line == 1 && isHeader(record) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid contributions count %q", line, record[1])
		}
		contributors = append(contributors, app.Contributor{
			Login:         record[0],
			Contributions: count,
		})
	}

	return contributors, nil
}

func isHeader(record []string) bool {
	return record[0] == contributorsHeader[0] && record[1] == contributorsHeader[1]
}
