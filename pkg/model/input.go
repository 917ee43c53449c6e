package model

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/mitchellh/mapstructure"
)

type RawCatalogInput struct {
	Subjects   []Subject
	Grid       *Grid
	Parameters map[string]any
}

// CatalogInput is a decoded input document. Grid and Parameters are optional overrides
type CatalogInput struct {
	Catalog    *Catalog
	Grid       *Grid
	Parameters map[string]any
}

func CatalogFromJson(file string) (CatalogInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return CatalogInput{}, err
	}
	var inputJson map[string]any
	err = json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return CatalogInput{}, err
	}

	var rawInput RawCatalogInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return CatalogInput{}, fmt.Errorf("cannot decode catalog: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawCatalogInput) (CatalogInput, error) {
	if len(rawInput.Subjects) == 0 {
		return CatalogInput{}, fmt.Errorf("catalog must contain at least one subject")
	}
	if rawInput.Grid != nil {
		if err := rawInput.Grid.Validate(); err != nil {
			return CatalogInput{}, err
		}
	}

	catalog, err := NewCatalog(rawInput.Subjects)
	if err != nil {
		return CatalogInput{}, err
	}
	return CatalogInput{
		Catalog:    catalog,
		Grid:       rawInput.Grid,
		Parameters: rawInput.Parameters,
	}, nil
}

// CatalogFromCsv reads subjects from a CSV document with the header "term,name,instructor,lecture_count"
func CatalogFromCsv(in io.Reader, delimiter rune) (*Catalog, error) {
	reader := csv.NewReader(in)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	subjects := []Subject{}
	if err := gocsv.UnmarshalCSV(reader, &subjects); err != nil {
		return nil, fmt.Errorf("cannot parse catalog csv: %w", err)
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one subject")
	}
	return NewCatalog(subjects)
}
