package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonValue serializes v for a JSON/TEXT column.
func jsonValue(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// jsonScan deserializes a JSON/TEXT column into dest.
func jsonScan(value any, dest any) error {
	if value == nil {
		return nil
	}
	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, dest)
	case string:
		return json.Unmarshal([]byte(raw), dest)
	default:
		return fmt.Errorf("json column: unsupported scan type %T", value)
	}
}
