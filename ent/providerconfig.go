// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monibridge/core/ent/providerconfig"
)

// ProviderConfig is the model entity for the ProviderConfig schema.
type ProviderConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Identifier holds the value of the "identifier" field.
	Identifier string `json:"identifier,omitempty"`
	// Category holds the value of the "category" field.
	Category providerconfig.Category `json:"category,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Status holds the value of the "status" field.
	Status providerconfig.Status `json:"status,omitempty"`
	// Credential holds the value of the "credential" field.
	Credential string `json:"-"`
	// EndpointURL holds the value of the "endpoint_url" field.
	EndpointURL string `json:"endpoint_url,omitempty"`
	// Settings holds the value of the "settings" field.
	Settings map[string]interface{} `json:"settings,omitempty"`
	// LastTestedAt holds the value of the "last_tested_at" field.
	LastTestedAt time.Time `json:"last_tested_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providerconfig.FieldSettings:
			values[i] = new([]byte)
		case providerconfig.FieldEnabled:
			values[i] = new(sql.NullBool)
		case providerconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case providerconfig.FieldIdentifier, providerconfig.FieldCategory, providerconfig.FieldStatus, providerconfig.FieldCredential, providerconfig.FieldEndpointURL:
			values[i] = new(sql.NullString)
		case providerconfig.FieldCreatedAt, providerconfig.FieldUpdatedAt, providerconfig.FieldLastTestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderConfig fields.
func (pc *ProviderConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providerconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pc.ID = int(value.Int64)
		case providerconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pc.CreatedAt = value.Time
			}
		case providerconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pc.UpdatedAt = value.Time
			}
		case providerconfig.FieldIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier", values[i])
			} else if value.Valid {
				pc.Identifier = value.String
			}
		case providerconfig.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				pc.Category = providerconfig.Category(value.String)
			}
		case providerconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				pc.Enabled = value.Bool
			}
		case providerconfig.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				pc.Status = providerconfig.Status(value.String)
			}
		case providerconfig.FieldCredential:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential", values[i])
			} else if value.Valid {
				pc.Credential = value.String
			}
		case providerconfig.FieldEndpointURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_url", values[i])
			} else if value.Valid {
				pc.EndpointURL = value.String
			}
		case providerconfig.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pc.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case providerconfig.FieldLastTestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_tested_at", values[i])
			} else if value.Valid {
				pc.LastTestedAt = value.Time
			}
		default:
			pc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderConfig.
// This includes values selected through modifiers, order, etc.
func (pc *ProviderConfig) Value(name string) (ent.Value, error) {
	return pc.selectValues.Get(name)
}

// Update returns a builder for updating this ProviderConfig.
// Note that you need to call ProviderConfig.Unwrap() before calling this method if this ProviderConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (pc *ProviderConfig) Update() *ProviderConfigUpdateOne {
	return NewProviderConfigClient(pc.config).UpdateOne(pc)
}

// Unwrap unwraps the ProviderConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pc *ProviderConfig) Unwrap() *ProviderConfig {
	_tx, ok := pc.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProviderConfig is not a transactional entity")
	}
	pc.config.driver = _tx.drv
	return pc
}

// String implements the fmt.Stringer.
func (pc *ProviderConfig) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pc.ID))
	builder.WriteString("created_at=")
	builder.WriteString(pc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("identifier=")
	builder.WriteString(pc.Identifier)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", pc.Category))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", pc.Enabled))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", pc.Status))
	builder.WriteString(", ")
	builder.WriteString("credential=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("endpoint_url=")
	builder.WriteString(pc.EndpointURL)
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", pc.Settings))
	builder.WriteString(", ")
	builder.WriteString("last_tested_at=")
	builder.WriteString(pc.LastTestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProviderConfigs is a parsable slice of ProviderConfig.
type ProviderConfigs []*ProviderConfig
