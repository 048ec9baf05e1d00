package sieve

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteViewsCSV writes one row per listed diagnosis:
// view, category, rank (1-based within the category), diagnosis.
func WriteViewsCSV(w io.Writer, views []View) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"view", "category", "rank", "diagnosis"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, v := range views {
		for _, g := range v.Groups {
			for i, d := range g.Diagnoses {
				row := []string{v.Title, string(g.Category), strconv.Itoa(i + 1), d}
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
