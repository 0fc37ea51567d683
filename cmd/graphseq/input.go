package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseq/sequencer"
)

// document is the on-disk input. JSON input decodes through the same YAML
// decoder.
type document struct {
	Graph  sequencer.Graph  `yaml:"graph" validate:"required,dive,keys,required,endkeys,dive,required"`
	Groups sequencer.Groups `yaml:"groups" validate:"required,dive,dive,required"`
}

var documentValidate = validator.New()

// errEmptyDocument is returned when the input holds no YAML document.
var errEmptyDocument = errors.New("empty input document")

// decodeDocument parses one YAML/JSON document and checks its shape. Item
// set consistency is left to sequencer.Validate.
func decodeDocument(r io.Reader) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := documentValidate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	return &doc, nil
}
