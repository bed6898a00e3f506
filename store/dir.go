package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/etnz/fundamentals"
)

const (
	financialsFile = "financials.json"
	snapshotFile   = "investment.json"
)

// Dir stores stocks in a folder, one sub folder per stock:
//
//	<root>/<stockID>/financials.json
//	<root>/<stockID>/investment.json
//
// Files are indented JSON so that the folder can live in a git repository.
type Dir struct {
	Root string
	// now is used to stamp saved financial data, time.Now when nil.
	now func() time.Time
}

var _ Store = (*Dir)(nil)

// NewDir returns a Dir rooted at root.
func NewDir(root string) *Dir { return &Dir{Root: root} }

func (d *Dir) path(stockID int64, name string) string {
	return filepath.Join(d.Root, strconv.FormatInt(stockID, 10), name)
}

func (d *Dir) timeNow() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}

// LoadHistory reads the financial data of a stock.
func (d *Dir) LoadHistory(ctx context.Context, stockID int64) (*fundamentals.FinancialData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := d.path(stockID, financialsFile)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return &fundamentals.FinancialData{StockID: stockID, Data: fundamentals.FinancialHistory{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open financial data %q: %w", filename, err)
	}
	defer f.Close()

	fd, err := fundamentals.DecodeFinancialData(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", filename, err)
	}
	fd.StockID = stockID
	return fd, nil
}

// SaveHistory writes the financial data of a stock and stamps its update time.
func (d *Dir) SaveHistory(ctx context.Context, stockID int64, fd *fundamentals.FinancialData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := d.timeNow().UTC().Truncate(time.Second)
	fd.StockID = stockID
	fd.UpdatedAt = &now
	return d.write(d.path(stockID, financialsFile), func(w io.Writer) error {
		return fundamentals.EncodeFinancialData(w, fd)
	})
}

// LoadSnapshot reads the investment snapshot of a stock, nil if there is none.
func (d *Dir) LoadSnapshot(ctx context.Context, stockID int64) (*fundamentals.InvestmentSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := d.path(stockID, snapshotFile)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open investment snapshot %q: %w", filename, err)
	}
	defer f.Close()

	s, err := fundamentals.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", filename, err)
	}
	return s, nil
}

// SaveSnapshot writes the investment snapshot of a stock.
func (d *Dir) SaveSnapshot(ctx context.Context, stockID int64, s *fundamentals.InvestmentSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.write(d.path(stockID, snapshotFile), func(w io.Writer) error {
		return fundamentals.EncodeSnapshot(w, s)
	})
}

// Stocks lists the stock IDs that have a folder, in increasing order.
func (d *Dir) Stocks() ([]int64, error) {
	entries, err := os.ReadDir(d.Root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list stocks in %q: %w", d.Root, err)
	}
	var ids []int64
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, err := strconv.ParseInt(e.Name(), 10, 64)
		if err != nil {
			continue // not a stock folder
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// write replaces filename atomically: content is written to a temporary file first.
func (d *Dir) write(filename string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", filename, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+"-*")
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("could not replace %q: %w", filename, err)
	}
	return nil
}
