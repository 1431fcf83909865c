package fundstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ternarybob/aestimo/internal/models"
)

func TestParseCSVResolvesAliasedHeaders(t *testing.T) {
	input := strings.Join([]string{
		"Company Name,Industry,Fiscal Year,Total Revenue,Operating Profit,Net Profit,Cash From Operations,Total Borrowings",
		"ACME,IT Services,2023,\"1,200\",300,250,260,90",
		"ACME,IT Services,2024,\"1,400\",340,280,290,85",
	}, "\n")

	rows, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.Company != "ACME" || r.Sector != models.SectorITServices || r.Year != 2023 {
		t.Errorf("identity fields: got %+v", r)
	}
	if r.Revenue == nil || *r.Revenue != 1200 {
		t.Errorf("revenue with thousands separator: got %v", r.Revenue)
	}
	if r.Debt == nil || *r.Debt != 90 {
		t.Errorf("debt via borrowings alias: got %v", r.Debt)
	}
}

func TestParseCSVEmptyCellIsMissingNotZero(t *testing.T) {
	input := strings.Join([]string{
		"company,sector,year,revenue,ebit,pat,ocf,debt",
		"ACME,FMCG,2024,1000,200,150,,40",
	}, "\n")

	rows, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].OCF != nil {
		t.Errorf("empty OCF cell must stay nil, got %v", *rows[0].OCF)
	}
	if rows[0].Revenue == nil || *rows[0].Revenue != 1000 {
		t.Errorf("revenue: got %v", rows[0].Revenue)
	}
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	input := "sector,revenue\nFMCG,1000\n"
	if _, err := parseCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for missing company column")
	}
}

func TestParseCSVRejectsBadYear(t *testing.T) {
	input := "company,year,revenue\nACME,notayear,1000\n"
	if _, err := parseCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for unparseable year")
	}
}

func TestParseCSVAcceptsFYPrefix(t *testing.T) {
	input := "company,year,revenue\nACME,FY2024,1000\n"
	rows, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Year != 2024 {
		t.Errorf("year: got %d, want 2024", rows[0].Year)
	}
}

func TestMemoryStoreUnknownCompany(t *testing.T) {
	store, err := newMemoryStore("test", []models.FundamentalRow{
		{Company: "ACME", Year: 2024, Revenue: models.Float(1000)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Rows(context.Background(), "NOSUCH")
	var unavailable *DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected DataUnavailableError, got %v", err)
	}
	if unavailable.Company != "NOSUCH" {
		t.Errorf("error company: got %q", unavailable.Company)
	}
}

func TestMemoryStoreCaseInsensitiveLookup(t *testing.T) {
	store, err := newMemoryStore("test", []models.FundamentalRow{
		{Company: "Acme", Year: 2024, Revenue: models.Float(1000)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := store.Rows(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestMemoryStoreSortsRows(t *testing.T) {
	store, err := newMemoryStore("test", []models.FundamentalRow{
		{Company: "ACME", Year: 2024},
		{Company: "ACME", Year: 2022},
		{Company: "ACME", Year: 2023},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := store.Rows(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Year <= rows[i-1].Year {
			t.Fatalf("rows not sorted ascending: %d after %d", rows[i].Year, rows[i-1].Year)
		}
	}
}

func TestMemoryStoreRejectsDuplicateYears(t *testing.T) {
	_, err := newMemoryStore("test", []models.FundamentalRow{
		{Company: "ACME", Year: 2024},
		{Company: "ACME", Year: 2024},
	})
	if err == nil {
		t.Fatal("expected error for duplicate fiscal year")
	}
}

func TestEmbeddedStoreDataset(t *testing.T) {
	store, err := NewEmbeddedStore()
	if err != nil {
		t.Fatalf("embedded dataset failed to load: %v", err)
	}

	infos, err := store.Companies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 5 {
		t.Fatalf("expected 5 companies, got %d", len(infos))
	}

	sectors := make(map[models.Sector]bool)
	for _, info := range infos {
		sectors[info.Sector] = true
	}
	for _, want := range []models.Sector{
		models.SectorITServices, models.SectorBanking, models.SectorFMCG,
		models.SectorConglomerate, models.SectorGeneral,
	} {
		if !sectors[want] {
			t.Errorf("embedded dataset missing sector %s", want)
		}
	}

	rows, err := store.Rows(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("TCS: expected 4 years, got %d", len(rows))
	}
	if *rows[0].Revenue != 161541 || *rows[3].Revenue != 240893 {
		t.Errorf("TCS revenue endpoints: got %v..%v", *rows[0].Revenue, *rows[3].Revenue)
	}

	// ZENTECH 2024 has a deliberately missing cash flow cell.
	zen, err := store.Rows(context.Background(), "ZENTECH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zen[len(zen)-1].OCF != nil {
		t.Error("ZENTECH latest OCF must be nil")
	}
}
