package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/date"
	"github.com/google/go-cmp/cmp"
)

var numberCmp = cmp.Comparer(func(a, b fundamentals.Number) bool { return a.Equal(b) })

func newTestDir(t *testing.T) *Dir {
	t.Helper()
	d := NewDir(t.TempDir())
	d.now = func() time.Time { return time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC) }
	return d
}

func TestDir_EmptyStock(t *testing.T) {
	ctx := context.Background()
	d := newTestDir(t)

	fd, err := d.LoadHistory(ctx, 42)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if fd.StockID != 42 || fd.Data.Len() != 0 {
		t.Errorf("LoadHistory = %+v, want an empty history for stock 42", fd)
	}

	s, err := d.LoadSnapshot(ctx, 42)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if s != nil {
		t.Errorf("LoadSnapshot = %+v, want nil", s)
	}

	ids, err := d.Stocks()
	if err != nil || len(ids) != 0 {
		t.Errorf("Stocks() = %v, %v, want none", ids, err)
	}
}

func TestDir_History(t *testing.T) {
	ctx := context.Background()
	d := newTestDir(t)

	h := fundamentals.NewDefaultHistory(2024)
	if err := h.Set("2024-12-31", fundamentals.Revenue, fundamentals.N(1000)); err != nil {
		t.Fatal(err)
	}
	if err := d.SaveHistory(ctx, 7, &fundamentals.FinancialData{Data: h}); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	got, err := d.LoadHistory(ctx, 7)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	updated := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	want := &fundamentals.FinancialData{StockID: 7, UpdatedAt: &updated, Data: h}
	if diff := cmp.Diff(want, got, numberCmp); diff != "" {
		t.Errorf("LoadHistory mismatch (-want +got):\n%s", diff)
	}

	// no temporary file is left behind
	entries, err := os.ReadDir(filepath.Join(d.Root, "7"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != financialsFile {
		t.Errorf("unexpected files in stock folder: %v", entries)
	}
}

func TestDir_Snapshot(t *testing.T) {
	ctx := context.Background()
	d := newTestDir(t)

	want := &fundamentals.InvestmentSnapshot{
		Date:              date.New(2025, 3, 31),
		CurrentSharePrice: fundamentals.N(15),
		StockType:         fundamentals.Stalwart,
		Action:            fundamentals.Wait,
	}
	if err := d.SaveSnapshot(ctx, 3, want); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	got, err := d.LoadSnapshot(ctx, 3)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if diff := cmp.Diff(want, got, numberCmp, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("LoadSnapshot mismatch (-want +got):\n%s", diff)
	}

	if err := os.Mkdir(filepath.Join(d.Root, "notes"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := d.SaveHistory(ctx, 1, &fundamentals.FinancialData{}); err != nil {
		t.Fatal(err)
	}
	ids, err := d.Stocks()
	if err != nil {
		t.Fatalf("Stocks: %v", err)
	}
	if diff := cmp.Diff([]int64{1, 3}, ids); diff != "" {
		t.Errorf("Stocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestDir_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestDir(t).LoadHistory(ctx, 1); err == nil {
		t.Error("LoadHistory with a cancelled context should fail")
	}
}
