// Package export writes the final record set to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
)

var header = []string{"name", "description", "website", "round", "source"}

// CSV writes one row per company, in the given order, to path. An existing
// file is overwritten. Any write or flush failure is the run's failure.
func CSV(companies []model.Company, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Write(f, companies); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// Write emits the CSV header and rows to w.
func Write(w io.Writer, companies []model.Company) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, c := range companies {
		row := []string{c.Name, c.Description, c.Website, c.Round.String(), c.Source}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row for %s: %w", c.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
