package fundamentals

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// This file contains the persistence envelopes shared by the local store and the backend.
//
// Financial data is one JSON object per stock:
//
//	{"stock_id":12,"updated_at":"2025-01-02T10:00:00Z","data":{"2024-12-31":{"revenue":1000}}}
//
// Only raw facts are written. Derived metrics are recomputed on read, keys that are not raw
// metrics are ignored.

// FinancialData is the financial history of a stock with its metadata.
type FinancialData struct {
	StockID   int64            `json:"stock_id,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
	Data      FinancialHistory `json:"data"`
}

// MarshalJSON writes the envelope with a stable key order.
func (fd FinancialData) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("stock_id", fd.StockID)
	if fd.UpdatedAt != nil {
		w.Append("updated_at", fd.UpdatedAt.UTC())
	}
	data := fd.Data
	if data == nil {
		data = FinancialHistory{}
	}
	w.Append("data", data)
	return w.MarshalJSON()
}

// EncodeFinancialData writes fd as indented JSON.
func EncodeFinancialData(w io.Writer, fd *FinancialData) error {
	return encodeIndent(w, fd)
}

// DecodeFinancialData reads a FinancialData. A null or missing "data" is an empty history.
func DecodeFinancialData(r io.Reader) (*FinancialData, error) {
	var fd FinancialData
	if err := json.NewDecoder(r).Decode(&fd); err != nil {
		return nil, fmt.Errorf("cannot decode financial data: %w", err)
	}
	if fd.Data == nil {
		fd.Data = FinancialHistory{}
	}
	return &fd, nil
}

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s *InvestmentSnapshot) error {
	return encodeIndent(w, s)
}

// DecodeSnapshot reads an InvestmentSnapshot. A JSON null decodes to nil.
func DecodeSnapshot(r io.Reader) (*InvestmentSnapshot, error) {
	var s *InvestmentSnapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot decode investment snapshot: %w", err)
	}
	return s, nil
}

func encodeIndent(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
