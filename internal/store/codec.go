package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"tasklist/internal/domain"
)

const schemaURL = "tasks.schema.json"

//go:embed schema.json
var schemaSource string

var payloadSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		panic(fmt.Sprintf("load task schema: %v", err))
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile task schema: %v", err))
	}
	return schema
}

// encodePayload serializes records into the slot format. A nil slice is
// written as an empty array.
func encodePayload(records []domain.Record) ([]byte, error) {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode task payload: %w", err)
	}
	return data, nil
}

// decodePayload parses a slot value and checks it against the task schema.
func decodePayload(data []byte) ([]domain.Record, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode task payload: %w", err)
	}
	if err := payloadSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("task payload rejected: %s", schemaErrorSummary(err))
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode task records: %w", err)
	}
	return records, nil
}

// schemaErrorSummary flattens a schema validation error into its leaf
// messages.
func schemaErrorSummary(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var messages []string
	collectSchemaErrors(ve, &messages)
	return strings.Join(messages, "; ")
}

func collectSchemaErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, location+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, messages)
	}
}
