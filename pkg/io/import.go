package io

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/pcba/pkg/board"
	"github.com/matzehuels/pcba/pkg/component"
	pcbaerrors "github.com/matzehuels/pcba/pkg/errors"
	"github.com/matzehuels/pcba/pkg/units"
)

// utf8BOM is stripped from the first header cell; spreadsheet tools add it.
const utf8BOM = "\ufeff"

// ReadOutline reads an outline table from r. Vertices are converted to
// millimetres and added in file order. The outline is not normalized.
func ReadOutline(r io.Reader) (*board.Outline, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	o := board.New()
	for i, row := range rows {
		var xy [2]float64
		for j, name := range []string{"x", "y"} {
			v, ok := row[name]
			if !ok {
				return nil, fmt.Errorf("row %d: %w", i+1, pcbaerrors.MissingField(name))
			}
			f, err := units.ToMillimetres(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, pcbaerrors.InvalidDimension(name, v))
			}
			xy[j] = f
		}
		o.AddPoint(xy[0], xy[1])
	}
	return o, nil
}

// ReadComponents reads the raw rows of a component table from r. Rows are
// returned in file order; validation is left to [component.Build].
func ReadComponents(r io.Reader) ([]component.Fields, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	out := make([]component.Fields, len(rows))
	for i, row := range rows {
		out[i] = component.Fields(row)
	}
	return out, nil
}

// ImportOutline reads the outline table at path.
func ImportOutline(path string) (*board.Outline, error) {
	var o *board.Outline
	err := withFile(path, func(r io.Reader) (err error) {
		o, err = ReadOutline(r)
		return err
	})
	return o, err
}

// ImportComponents reads the component table at path.
func ImportComponents(path string) ([]component.Fields, error) {
	var rows []component.Fields
	err := withFile(path, func(r io.Reader) (err error) {
		rows, err = ReadComponents(r)
		return err
	})
	return rows, err
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pcbaerrors.New(pcbaerrors.ErrCodeMissingInputFile, "%s not found", path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// readTable reads a header row and maps every following row by column name.
// Cells beyond the header width are dropped; missing trailing cells are
// left out of the map.
func readTable(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, pcbaerrors.New(pcbaerrors.ErrCodeMissingField, "no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows []map[string]string
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(rec) {
				break
			}
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
