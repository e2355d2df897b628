package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const dateOnlyLayout = "2006-01-02"

// Datetime is a time.Time that also accepts bare calendar dates on input.
// The booking form's date pickers send YYYY-MM-DD; API clients send RFC 3339.
// Output is always RFC 3339, and the value is stored as a native BSON date.
type Datetime struct {
	time.Time
}

func NewDatetime(t time.Time) Datetime {
	return Datetime{Time: t}
}

func ParseDatetime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", value)
	}
	return t, nil
}

func (d Datetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

func (d *Datetime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := ParseDatetime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Datetime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

func (d *Datetime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	return raw.Unmarshal(&d.Time)
}

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}
