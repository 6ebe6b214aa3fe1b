// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// UploadFile is the model entity for the UploadFile schema.
type UploadFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadFileQuery when eager-loading is set.
	Edges        UploadFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadFileEdges holds the relations/edges for other nodes in the graph.
type UploadFileEdges struct {
	// Records holds the value of the records edge.
	Records []*ExtractedRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e UploadFileEdges) RecordsOrErr() ([]*ExtractedRecord, error) {
	if e.loadedTypes[0] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case uploadfile.FieldFilename, uploadfile.FieldFilePath, uploadfile.FieldFileExt, uploadfile.FieldFormat, uploadfile.FieldStatus:
			values[i] = new(sql.NullString)
		case uploadfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case uploadfile.FieldID, uploadfile.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadFile fields.
func (uf *UploadFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				uf.ID = *value
			}
		case uploadfile.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				uf.OwnerID = *value
			}
		case uploadfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				uf.Filename = value.String
			}
		case uploadfile.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				uf.FilePath = value.String
			}
		case uploadfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				uf.FileExt = value.String
			}
		case uploadfile.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				uf.Format = value.String
			}
		case uploadfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				uf.FileSize = int(value.Int64)
			}
		case uploadfile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				uf.Status = value.String
			}
		case uploadfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				uf.UploadedAt = value.Time
			}
		default:
			uf.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadFile.
// This includes values selected through modifiers, order, etc.
func (uf *UploadFile) Value(name string) (ent.Value, error) {
	return uf.selectValues.Get(name)
}

// QueryRecords queries the "records" edge of the UploadFile entity.
func (uf *UploadFile) QueryRecords() *ExtractedRecordQuery {
	return NewUploadFileClient(uf.config).QueryRecords(uf)
}

// Update returns a builder for updating this UploadFile.
// Note that you need to call UploadFile.Unwrap() before calling this method if this UploadFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (uf *UploadFile) Update() *UploadFileUpdateOne {
	return NewUploadFileClient(uf.config).UpdateOne(uf)
}

// Unwrap unwraps the UploadFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (uf *UploadFile) Unwrap() *UploadFile {
	_tx, ok := uf.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadFile is not a transactional entity")
	}
	uf.config.driver = _tx.drv
	return uf
}

// String implements the fmt.Stringer.
func (uf *UploadFile) String() string {
	var builder strings.Builder
	builder.WriteString("UploadFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", uf.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", uf.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(uf.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(uf.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(uf.FileExt)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(uf.Format)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", uf.FileSize))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(uf.Status)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(uf.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadFiles is a parsable slice of UploadFile.
type UploadFiles []*UploadFile
