package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// Header is the CSV header for a chart-of-accounts file.
const Header = "number,name,type,sub_type,role"

const (
	numFields  = 5
	colNumber  = 0
	colName    = 1
	colType    = 2
	colSubType = 3
	colRole    = 4
)

// ReadSpecs reads account specs from a chart-of-accounts CSV.
func ReadSpecs(r io.Reader) ([]ledger.AccountSpec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var specs []ledger.AccountSpec
	for i, rec := range records[1:] {
		spec, err := unmarshalSpec(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// WriteSpecs writes account specs to a chart-of-accounts CSV (with header).
func WriteSpecs(w io.Writer, specs []ledger.AccountSpec) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, spec := range specs {
		row := []string{spec.Number, spec.Name, string(spec.Type), spec.SubType, string(spec.Role)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalSpec(record []string) (ledger.AccountSpec, error) {
	if len(record) != numFields {
		return ledger.AccountSpec{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	accountType := model.AccountType(record[colType])
	switch accountType {
	case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity,
		model.AccountTypeRevenue, model.AccountTypeExpense:
	default:
		return ledger.AccountSpec{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	return ledger.AccountSpec{
		Number:  record[colNumber],
		Name:    record[colName],
		Type:    accountType,
		SubType: record[colSubType],
		Role:    model.AccountRole(record[colRole]),
	}, nil
}
