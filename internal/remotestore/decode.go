// internal/remotestore/decode.go
package remotestore

import (
	"encoding/json"
	"fmt"
)

// Decode converts a gateway record into a typed value via JSON
func Decode[T any](record Record) (T, error) {
	var value T
	data, err := json.Marshal(record)
	if err != nil {
		return value, fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode record: %w", err)
	}
	return value, nil
}

// DecodeAll converts a slice of gateway records into typed values
func DecodeAll[T any](records []Record) ([]T, error) {
	values := make([]T, 0, len(records))
	for _, record := range records {
		value, err := Decode[T](record)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Encode converts a typed value into a gateway record via JSON
func Encode(value any) (Record, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to build record: %w", err)
	}
	return record, nil
}
