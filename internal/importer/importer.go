package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storecrm/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductWriter is the slice of the product repository the importer needs.
type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads product CSV files and inserts/updates products by name.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if p == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}

	priceStr := pick(record, index, "price")
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("product %q: bad price %q", name, priceStr)
	}
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("product %q: price must be greater than zero", name)
	}

	stockStr := pick(record, index, "stock")
	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		return nil, fmt.Errorf("product %q: bad stock %q", name, stockStr)
	}
	if stock < 0 {
		return nil, fmt.Errorf("product %q: stock must be zero or greater", name)
	}

	return &domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		Price:       price,
		Stock:       stock,
		Category:    pick(record, index, "category"),
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
