// Package dataset loads and validates transit network data. The core router
// never reaches out to storage itself; it is handed an already-validated
// Dataset value.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Station is a stop position in degrees.
type Station struct {
	Lat float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
}

// Link is one bidirectional connection. On the wire it is the 4-tuple
// [from, to, line, time].
type Link struct {
	From string
	To   string
	Line string
	Time float64
}

func (l *Link) UnmarshalJSON(b []byte) error {
	var arr []json.RawMessage
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) != 4 {
		return fmt.Errorf("link must be [from, to, line, time], got %d elements", len(arr))
	}
	if err := json.Unmarshal(arr[0], &l.From); err != nil {
		return fmt.Errorf("link from: %w", err)
	}
	if err := json.Unmarshal(arr[1], &l.To); err != nil {
		return fmt.Errorf("link to: %w", err)
	}
	if err := json.Unmarshal(arr[2], &l.Line); err != nil {
		return fmt.Errorf("link line: %w", err)
	}
	if err := json.Unmarshal(arr[3], &l.Time); err != nil {
		return fmt.Errorf("link time: %w", err)
	}
	return nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.From, l.To, l.Line, l.Time})
}

func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 4 {
		return fmt.Errorf("link must be a [from, to, line, time] sequence")
	}
	if err := value.Content[0].Decode(&l.From); err != nil {
		return fmt.Errorf("link from: %w", err)
	}
	if err := value.Content[1].Decode(&l.To); err != nil {
		return fmt.Errorf("link to: %w", err)
	}
	if err := value.Content[2].Decode(&l.Line); err != nil {
		return fmt.Errorf("link line: %w", err)
	}
	if err := value.Content[3].Decode(&l.Time); err != nil {
		return fmt.Errorf("link time: %w", err)
	}
	return nil
}

// Dataset is the external representation of a transit network.
type Dataset struct {
	Stations        map[string]Station `json:"stations" yaml:"stations" validate:"required,min=1,dive"`
	Links           []Link             `json:"links" yaml:"links" validate:"required,min=1"`
	TransferPenalty float64            `json:"transfer_penalty" yaml:"transfer_penalty" validate:"gte=0"`
}

// Validate checks structural soundness: coordinate ranges, penalty sign,
// non-empty link fields. Semantic network checks (negative times, dangling
// station references) belong to network construction.
func (d *Dataset) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return err
	}
	for _, l := range d.Links {
		if l.From == "" || l.To == "" || l.Line == "" {
			return fmt.Errorf("link %v-%v: from, to and line must be non-empty", l.From, l.To)
		}
	}
	return nil
}
