package importer

import (
	"context"
	"strings"
	"testing"

	"storecrm/internal/domain"
	"github.com/shopspring/decimal"
)

type captureWriter struct {
	products []domain.Product
}

func (w *captureWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	w.products = append(w.products, p)
	clone := p
	clone.ID = "p1"
	return &clone, nil
}

func TestRun_ImportsRows(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price,stock,category",
		"Widget,Handy widget,9.99,5,tools",
		",skipped row without a name,1.00,1,tools",
		"Gadget,,12.50,0,",
	}, "\n")

	writer := &captureWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer)

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported rows, got %d", n)
	}
	if len(writer.products) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(writer.products))
	}

	widget := writer.products[0]
	if widget.Name != "Widget" || widget.Stock != 5 || widget.Category != "tools" {
		t.Fatalf("unexpected first product %+v", widget)
	}
	if !widget.Price.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("unexpected price %s", widget.Price)
	}

	gadget := writer.products[1]
	if gadget.Name != "Gadget" || gadget.Stock != 0 {
		t.Fatalf("unexpected second product %+v", gadget)
	}
}

func TestRun_ShuffledHeaders(t *testing.T) {
	csv := strings.Join([]string{
		"stock,name,price",
		"7,Widget,3.25",
	}, "\n")

	writer := &captureWriter{}
	n, err := NewCSVImporter(strings.NewReader(csv), writer).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 || writer.products[0].Stock != 7 {
		t.Fatalf("header mapping broken: n=%d products=%+v", n, writer.products)
	}
}

func TestRun_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"zero price", "Widget,,0,5,"},
		{"negative price", "Widget,,-1,5,"},
		{"bad price", "Widget,,cheap,5,"},
		{"negative stock", "Widget,,1.00,-2,"},
		{"bad stock", "Widget,,1.00,many,"},
	}
	for _, tc := range cases {
		csv := "name,description,price,stock,category\n" + tc.row
		_, err := NewCSVImporter(strings.NewReader(csv), &captureWriter{}).Run(context.Background())
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
