// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
)

// ConversionJob is the model entity for the ConversionJob schema.
type ConversionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FileIds holds the value of the "file_ids" field.
	FileIds []uuid.UUID `json:"file_ids,omitempty"`
	// TotalFiles holds the value of the "total_files" field.
	TotalFiles int `json:"total_files,omitempty"`
	// ProcessedFiles holds the value of the "processed_files" field.
	ProcessedFiles int `json:"processed_files,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversionJobQuery when eager-loading is set.
	Edges        ConversionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversionJobEdges holds the relations/edges for other nodes in the graph.
type ConversionJobEdges struct {
	// Records holds the value of the records edge.
	Records []*ExtractedRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e ConversionJobEdges) RecordsOrErr() ([]*ExtractedRecord, error) {
	if e.loadedTypes[0] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversionjob.FieldFileIds:
			values[i] = new([]byte)
		case conversionjob.FieldTotalFiles, conversionjob.FieldProcessedFiles:
			values[i] = new(sql.NullInt64)
		case conversionjob.FieldName, conversionjob.FieldStatus, conversionjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case conversionjob.FieldStartedAt, conversionjob.FieldCompletedAt, conversionjob.FieldCreatedAt, conversionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case conversionjob.FieldID, conversionjob.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversionJob fields.
func (cj *ConversionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cj.ID = *value
			}
		case conversionjob.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				cj.OwnerID = *value
			}
		case conversionjob.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				cj.Name = value.String
			}
		case conversionjob.FieldFileIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cj.FileIds); err != nil {
					return fmt.Errorf("unmarshal field file_ids: %w", err)
				}
			}
		case conversionjob.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				cj.TotalFiles = int(value.Int64)
			}
		case conversionjob.FieldProcessedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_files", values[i])
			} else if value.Valid {
				cj.ProcessedFiles = int(value.Int64)
			}
		case conversionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cj.Status = value.String
			}
		case conversionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				cj.ErrorMessage = new(string)
				*cj.ErrorMessage = value.String
			}
		case conversionjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				cj.StartedAt = new(time.Time)
				*cj.StartedAt = value.Time
			}
		case conversionjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				cj.CompletedAt = new(time.Time)
				*cj.CompletedAt = value.Time
			}
		case conversionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cj.CreatedAt = value.Time
			}
		case conversionjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cj.UpdatedAt = value.Time
			}
		default:
			cj.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversionJob.
// This includes values selected through modifiers, order, etc.
func (cj *ConversionJob) Value(name string) (ent.Value, error) {
	return cj.selectValues.Get(name)
}

// QueryRecords queries the "records" edge of the ConversionJob entity.
func (cj *ConversionJob) QueryRecords() *ExtractedRecordQuery {
	return NewConversionJobClient(cj.config).QueryRecords(cj)
}

// Update returns a builder for updating this ConversionJob.
// Note that you need to call ConversionJob.Unwrap() before calling this method if this ConversionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (cj *ConversionJob) Update() *ConversionJobUpdateOne {
	return NewConversionJobClient(cj.config).UpdateOne(cj)
}

// Unwrap unwraps the ConversionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cj *ConversionJob) Unwrap() *ConversionJob {
	_tx, ok := cj.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversionJob is not a transactional entity")
	}
	cj.config.driver = _tx.drv
	return cj
}

// String implements the fmt.Stringer.
func (cj *ConversionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ConversionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cj.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", cj.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(cj.Name)
	builder.WriteString(", ")
	builder.WriteString("file_ids=")
	builder.WriteString(fmt.Sprintf("%v", cj.FileIds))
	builder.WriteString(", ")
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", cj.TotalFiles))
	builder.WriteString(", ")
	builder.WriteString("processed_files=")
	builder.WriteString(fmt.Sprintf("%v", cj.ProcessedFiles))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(cj.Status)
	builder.WriteString(", ")
	if v := cj.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := cj.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := cj.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cj.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cj.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConversionJobs is a parsable slice of ConversionJob.
type ConversionJobs []*ConversionJob
