package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// ErrMissingColumn indicates a source table lacks a column the builders
// depend on. It is a load failure, not a row-level warning.
var ErrMissingColumn = errors.New("required column is missing")

// Sources points at the five CSV tables the catalog is built from.
type Sources struct {
	RentalFile        string
	CrimeFile         string
	WalkabilityFile   string
	AnimalsFile       string
	OrganizationsFile string
}

// Tables holds the decoded rows of all source tables.
type Tables struct {
	Rental        []RentalRow
	Crime         []CrimeRow
	Walkability   []WalkabilityRow
	Animals       []AnimalRow
	Organizations []OrganizationRow
}

// Load reads and decodes all five source tables. A missing or unreadable
// file, or a table without its required columns, fails the whole load;
// individual rows that cannot be decoded are logged and dropped.
func Load(src Sources, logger *zap.Logger) (*Tables, error) {
	tables := &Tables{}

	if err := loadTable(src.RentalFile, "rental", []string{"analysis_neighborhood", "rent_avg"}, &tables.Rental, logger); err != nil {
		return nil, err
	}
	if err := loadTable(src.CrimeFile, "crime", []string{"Analysis Neighborhood"}, &tables.Crime, logger); err != nil {
		return nil, err
	}
	if err := loadTable(src.WalkabilityFile, "walkability", []string{"neighborhood_name", "NatWalkInd"}, &tables.Walkability, logger); err != nil {
		return nil, err
	}
	if err := loadTable(src.AnimalsFile, "animals", []string{"animal_id", "type", "organization_id"}, &tables.Animals, logger); err != nil {
		return nil, err
	}
	if err := loadTable(src.OrganizationsFile, "organizations", []string{"organization_id", "address_state", "address_postcode"}, &tables.Organizations, logger); err != nil {
		return nil, err
	}

	logger.Info("loaded source tables",
		zap.Int("rental_rows", len(tables.Rental)),
		zap.Int("crime_rows", len(tables.Crime)),
		zap.Int("walkability_rows", len(tables.Walkability)),
		zap.Int("animal_rows", len(tables.Animals)),
		zap.Int("organization_rows", len(tables.Organizations)),
	)

	return tables, nil
}

// loadTable reads one CSV file and decodes every record into out, which must
// be a pointer to a slice of row structs.
func loadTable[T any](path, table string, required []string, out *[]T, logger *zap.Logger) error {
	records, err := readCSV(path)
	if err != nil {
		return fmt.Errorf("loading %s table: %w", table, err)
	}

	if len(records) == 0 {
		return fmt.Errorf("loading %s table: file %q has no header", table, path)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("loading %s table from %q: column %q: %w", table, path, name, ErrMissingColumn)
		}
	}

	rows := make([]T, 0, len(records)-1)
	for n, record := range records[1:] {
		cells := make(map[string]string, len(header))
		for name, i := range index {
			if i < len(record) {
				cells[name] = record[i]
			}
		}

		var row T
		if err := decodeRow(cells, &row); err != nil {
			logger.Warn("skipping row",
				zap.String("table", table),
				zap.Int("row", n+1),
				zap.Error(err),
			)
			continue
		}
		rows = append(rows, row)
	}

	*out = rows
	return nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

// decodeRow maps one record's cells onto a typed row. Weakly-typed input lets
// numeric columns arrive as strings, the only form CSV provides.
func decodeRow(cells map[string]string, out any) error {
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(cells)
}
