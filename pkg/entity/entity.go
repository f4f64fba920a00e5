// Package entity models Atlas catalog entities and shapes them into the
// payloads the entity APIs expect.
package entity

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Entity is an Atlas catalog entity.
type Entity struct {
	TypeName               string                 `json:"typeName" mapstructure:"typeName"`
	GUID                   string                 `json:"guid,omitempty" mapstructure:"guid"`
	Status                 string                 `json:"status,omitempty" mapstructure:"status"`
	Attributes             map[string]interface{} `json:"attributes,omitempty" mapstructure:"attributes"`
	RelationshipAttributes map[string]interface{} `json:"relationshipAttributes,omitempty" mapstructure:"relationshipAttributes"`
}

// Validate checks that the entity carries the minimum the API requires.
func (e *Entity) Validate() error {
	if e.TypeName == "" {
		return fmt.Errorf("entity typeName is required")
	}
	return nil
}

// FromMap coerces a raw JSON object into an Entity.
func FromMap(raw map[string]interface{}) (*Entity, error) {
	var e Entity
	if err := mapstructure.Decode(raw, &e); err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// SinglePayload wraps a single entity in the create-or-update body.
func SinglePayload(e *Entity) (map[string]interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"entity":           e,
		"referredEntities": map[string]interface{}{},
	}, nil
}

// BulkPayload wraps a batch of entities in the bulk upload body.
func BulkPayload(batch []*Entity) (map[string]interface{}, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("batch is empty")
	}
	for i, e := range batch {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return map[string]interface{}{
		"entities": batch,
	}, nil
}
