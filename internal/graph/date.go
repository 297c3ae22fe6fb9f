package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date travels as milliseconds since the Unix epoch.
type Date struct {
	time.Time
}

func (Date) ImplementsGraphQLType(name string) bool {
	return name == "Date"
}

func (d *Date) UnmarshalGraphQL(input interface{}) error {
	var ms int64
	switch v := input.(type) {
	case int32:
		ms = int64(v)
	case int64:
		ms = v
	case int:
		ms = int64(v)
	case float64:
		ms = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("invalid Date %q", v.String())
		}
		ms = n
	default:
		return fmt.Errorf("wrong type for Date: %T", input)
	}
	d.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UnixMilli())
}
