// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// UploadFileUpdate is the builder for updating UploadFile entities.
type UploadFileUpdate struct {
	config
	hooks    []Hook
	mutation *UploadFileMutation
}

// Where appends a list predicates to the UploadFileUpdate builder.
func (ufu *UploadFileUpdate) Where(ps ...predicate.UploadFile) *UploadFileUpdate {
	ufu.mutation.Where(ps...)
	return ufu
}

// SetOwnerID sets the "owner_id" field.
func (ufu *UploadFileUpdate) SetOwnerID(u uuid.UUID) *UploadFileUpdate {
	ufu.mutation.SetOwnerID(u)
	return ufu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableOwnerID(u *uuid.UUID) *UploadFileUpdate {
	if u != nil {
		ufu.SetOwnerID(*u)
	}
	return ufu
}

// SetFilename sets the "filename" field.
func (ufu *UploadFileUpdate) SetFilename(s string) *UploadFileUpdate {
	ufu.mutation.SetFilename(s)
	return ufu
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableFilename(s *string) *UploadFileUpdate {
	if s != nil {
		ufu.SetFilename(*s)
	}
	return ufu
}

// SetFilePath sets the "file_path" field.
func (ufu *UploadFileUpdate) SetFilePath(s string) *UploadFileUpdate {
	ufu.mutation.SetFilePath(s)
	return ufu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableFilePath(s *string) *UploadFileUpdate {
	if s != nil {
		ufu.SetFilePath(*s)
	}
	return ufu
}

// SetFileExt sets the "file_ext" field.
func (ufu *UploadFileUpdate) SetFileExt(s string) *UploadFileUpdate {
	ufu.mutation.SetFileExt(s)
	return ufu
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableFileExt(s *string) *UploadFileUpdate {
	if s != nil {
		ufu.SetFileExt(*s)
	}
	return ufu
}

// SetFormat sets the "format" field.
func (ufu *UploadFileUpdate) SetFormat(s string) *UploadFileUpdate {
	ufu.mutation.SetFormat(s)
	return ufu
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableFormat(s *string) *UploadFileUpdate {
	if s != nil {
		ufu.SetFormat(*s)
	}
	return ufu
}

// SetFileSize sets the "file_size" field.
func (ufu *UploadFileUpdate) SetFileSize(i int) *UploadFileUpdate {
	ufu.mutation.ResetFileSize()
	ufu.mutation.SetFileSize(i)
	return ufu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableFileSize(i *int) *UploadFileUpdate {
	if i != nil {
		ufu.SetFileSize(*i)
	}
	return ufu
}

// AddFileSize adds i to the "file_size" field.
func (ufu *UploadFileUpdate) AddFileSize(i int) *UploadFileUpdate {
	ufu.mutation.AddFileSize(i)
	return ufu
}

// SetStatus sets the "status" field.
func (ufu *UploadFileUpdate) SetStatus(s string) *UploadFileUpdate {
	ufu.mutation.SetStatus(s)
	return ufu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableStatus(s *string) *UploadFileUpdate {
	if s != nil {
		ufu.SetStatus(*s)
	}
	return ufu
}

// SetUploadedAt sets the "uploaded_at" field.
func (ufu *UploadFileUpdate) SetUploadedAt(t time.Time) *UploadFileUpdate {
	ufu.mutation.SetUploadedAt(t)
	return ufu
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (ufu *UploadFileUpdate) SetNillableUploadedAt(t *time.Time) *UploadFileUpdate {
	if t != nil {
		ufu.SetUploadedAt(*t)
	}
	return ufu
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (ufu *UploadFileUpdate) AddRecordIDs(ids ...uuid.UUID) *UploadFileUpdate {
	ufu.mutation.AddRecordIDs(ids...)
	return ufu
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (ufu *UploadFileUpdate) AddRecords(e ...*ExtractedRecord) *UploadFileUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ufu.AddRecordIDs(ids...)
}

// Mutation returns the UploadFileMutation object of the builder.
func (ufu *UploadFileUpdate) Mutation() *UploadFileMutation {
	return ufu.mutation
}

// ClearRecords clears all "records" edges to the ExtractedRecord entity.
func (ufu *UploadFileUpdate) ClearRecords() *UploadFileUpdate {
	ufu.mutation.ClearRecords()
	return ufu
}

// RemoveRecordIDs removes the "records" edge to ExtractedRecord entities by IDs.
func (ufu *UploadFileUpdate) RemoveRecordIDs(ids ...uuid.UUID) *UploadFileUpdate {
	ufu.mutation.RemoveRecordIDs(ids...)
	return ufu
}

// RemoveRecords removes "records" edges to ExtractedRecord entities.
func (ufu *UploadFileUpdate) RemoveRecords(e ...*ExtractedRecord) *UploadFileUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ufu.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ufu *UploadFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ufu.sqlSave, ufu.mutation, ufu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ufu *UploadFileUpdate) SaveX(ctx context.Context) int {
	affected, err := ufu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ufu *UploadFileUpdate) Exec(ctx context.Context) error {
	_, err := ufu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ufu *UploadFileUpdate) ExecX(ctx context.Context) {
	if err := ufu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ufu *UploadFileUpdate) check() error {
	if v, ok := ufu.mutation.Filename(); ok {
		if err := uploadfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadFile.filename": %w`, err)}
		}
	}
	if v, ok := ufu.mutation.FilePath(); ok {
		if err := uploadfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_path": %w`, err)}
		}
	}
	if v, ok := ufu.mutation.FileExt(); ok {
		if err := uploadfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_ext": %w`, err)}
		}
	}
	if v, ok := ufu.mutation.Format(); ok {
		if err := uploadfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "UploadFile.format": %w`, err)}
		}
	}
	if v, ok := ufu.mutation.FileSize(); ok {
		if err := uploadfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_size": %w`, err)}
		}
	}
	if v, ok := ufu.mutation.Status(); ok {
		if err := uploadfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadFile.status": %w`, err)}
		}
	}
	return nil
}

func (ufu *UploadFileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ufu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadfile.Table, uploadfile.Columns, sqlgraph.NewFieldSpec(uploadfile.FieldID, field.TypeUUID))
	if ps := ufu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ufu.mutation.OwnerID(); ok {
		_spec.SetField(uploadfile.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := ufu.mutation.Filename(); ok {
		_spec.SetField(uploadfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := ufu.mutation.FilePath(); ok {
		_spec.SetField(uploadfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := ufu.mutation.FileExt(); ok {
		_spec.SetField(uploadfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := ufu.mutation.Format(); ok {
		_spec.SetField(uploadfile.FieldFormat, field.TypeString, value)
	}
	if value, ok := ufu.mutation.FileSize(); ok {
		_spec.SetField(uploadfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := ufu.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := ufu.mutation.Status(); ok {
		_spec.SetField(uploadfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := ufu.mutation.UploadedAt(); ok {
		_spec.SetField(uploadfile.FieldUploadedAt, field.TypeTime, value)
	}
	if ufu.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ufu.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !ufu.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ufu.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ufu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ufu.mutation.done = true
	return n, nil
}

// UploadFileUpdateOne is the builder for updating a single UploadFile entity.
type UploadFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadFileMutation
}

// SetOwnerID sets the "owner_id" field.
func (ufuo *UploadFileUpdateOne) SetOwnerID(u uuid.UUID) *UploadFileUpdateOne {
	ufuo.mutation.SetOwnerID(u)
	return ufuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableOwnerID(u *uuid.UUID) *UploadFileUpdateOne {
	if u != nil {
		ufuo.SetOwnerID(*u)
	}
	return ufuo
}

// SetFilename sets the "filename" field.
func (ufuo *UploadFileUpdateOne) SetFilename(s string) *UploadFileUpdateOne {
	ufuo.mutation.SetFilename(s)
	return ufuo
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableFilename(s *string) *UploadFileUpdateOne {
	if s != nil {
		ufuo.SetFilename(*s)
	}
	return ufuo
}

// SetFilePath sets the "file_path" field.
func (ufuo *UploadFileUpdateOne) SetFilePath(s string) *UploadFileUpdateOne {
	ufuo.mutation.SetFilePath(s)
	return ufuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableFilePath(s *string) *UploadFileUpdateOne {
	if s != nil {
		ufuo.SetFilePath(*s)
	}
	return ufuo
}

// SetFileExt sets the "file_ext" field.
func (ufuo *UploadFileUpdateOne) SetFileExt(s string) *UploadFileUpdateOne {
	ufuo.mutation.SetFileExt(s)
	return ufuo
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableFileExt(s *string) *UploadFileUpdateOne {
	if s != nil {
		ufuo.SetFileExt(*s)
	}
	return ufuo
}

// SetFormat sets the "format" field.
func (ufuo *UploadFileUpdateOne) SetFormat(s string) *UploadFileUpdateOne {
	ufuo.mutation.SetFormat(s)
	return ufuo
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableFormat(s *string) *UploadFileUpdateOne {
	if s != nil {
		ufuo.SetFormat(*s)
	}
	return ufuo
}

// SetFileSize sets the "file_size" field.
func (ufuo *UploadFileUpdateOne) SetFileSize(i int) *UploadFileUpdateOne {
	ufuo.mutation.ResetFileSize()
	ufuo.mutation.SetFileSize(i)
	return ufuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableFileSize(i *int) *UploadFileUpdateOne {
	if i != nil {
		ufuo.SetFileSize(*i)
	}
	return ufuo
}

// AddFileSize adds i to the "file_size" field.
func (ufuo *UploadFileUpdateOne) AddFileSize(i int) *UploadFileUpdateOne {
	ufuo.mutation.AddFileSize(i)
	return ufuo
}

// SetStatus sets the "status" field.
func (ufuo *UploadFileUpdateOne) SetStatus(s string) *UploadFileUpdateOne {
	ufuo.mutation.SetStatus(s)
	return ufuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableStatus(s *string) *UploadFileUpdateOne {
	if s != nil {
		ufuo.SetStatus(*s)
	}
	return ufuo
}

// SetUploadedAt sets the "uploaded_at" field.
func (ufuo *UploadFileUpdateOne) SetUploadedAt(t time.Time) *UploadFileUpdateOne {
	ufuo.mutation.SetUploadedAt(t)
	return ufuo
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (ufuo *UploadFileUpdateOne) SetNillableUploadedAt(t *time.Time) *UploadFileUpdateOne {
	if t != nil {
		ufuo.SetUploadedAt(*t)
	}
	return ufuo
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (ufuo *UploadFileUpdateOne) AddRecordIDs(ids ...uuid.UUID) *UploadFileUpdateOne {
	ufuo.mutation.AddRecordIDs(ids...)
	return ufuo
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (ufuo *UploadFileUpdateOne) AddRecords(e ...*ExtractedRecord) *UploadFileUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ufuo.AddRecordIDs(ids...)
}

// Mutation returns the UploadFileMutation object of the builder.
func (ufuo *UploadFileUpdateOne) Mutation() *UploadFileMutation {
	return ufuo.mutation
}

// ClearRecords clears all "records" edges to the ExtractedRecord entity.
func (ufuo *UploadFileUpdateOne) ClearRecords() *UploadFileUpdateOne {
	ufuo.mutation.ClearRecords()
	return ufuo
}

// RemoveRecordIDs removes the "records" edge to ExtractedRecord entities by IDs.
func (ufuo *UploadFileUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *UploadFileUpdateOne {
	ufuo.mutation.RemoveRecordIDs(ids...)
	return ufuo
}

// RemoveRecords removes "records" edges to ExtractedRecord entities.
func (ufuo *UploadFileUpdateOne) RemoveRecords(e ...*ExtractedRecord) *UploadFileUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ufuo.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the UploadFileUpdate builder.
func (ufuo *UploadFileUpdateOne) Where(ps ...predicate.UploadFile) *UploadFileUpdateOne {
	ufuo.mutation.Where(ps...)
	return ufuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ufuo *UploadFileUpdateOne) Select(field string, fields ...string) *UploadFileUpdateOne {
	ufuo.fields = append([]string{field}, fields...)
	return ufuo
}

// Save executes the query and returns the updated UploadFile entity.
func (ufuo *UploadFileUpdateOne) Save(ctx context.Context) (*UploadFile, error) {
	return withHooks(ctx, ufuo.sqlSave, ufuo.mutation, ufuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ufuo *UploadFileUpdateOne) SaveX(ctx context.Context) *UploadFile {
	node, err := ufuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ufuo *UploadFileUpdateOne) Exec(ctx context.Context) error {
	_, err := ufuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ufuo *UploadFileUpdateOne) ExecX(ctx context.Context) {
	if err := ufuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ufuo *UploadFileUpdateOne) check() error {
	if v, ok := ufuo.mutation.Filename(); ok {
		if err := uploadfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadFile.filename": %w`, err)}
		}
	}
	if v, ok := ufuo.mutation.FilePath(); ok {
		if err := uploadfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_path": %w`, err)}
		}
	}
	if v, ok := ufuo.mutation.FileExt(); ok {
		if err := uploadfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_ext": %w`, err)}
		}
	}
	if v, ok := ufuo.mutation.Format(); ok {
		if err := uploadfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "UploadFile.format": %w`, err)}
		}
	}
	if v, ok := ufuo.mutation.FileSize(); ok {
		if err := uploadfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_size": %w`, err)}
		}
	}
	if v, ok := ufuo.mutation.Status(); ok {
		if err := uploadfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadFile.status": %w`, err)}
		}
	}
	return nil
}

func (ufuo *UploadFileUpdateOne) sqlSave(ctx context.Context) (_node *UploadFile, err error) {
	if err := ufuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadfile.Table, uploadfile.Columns, sqlgraph.NewFieldSpec(uploadfile.FieldID, field.TypeUUID))
	id, ok := ufuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ufuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadfile.FieldID)
		for _, f := range fields {
			if !uploadfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ufuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ufuo.mutation.OwnerID(); ok {
		_spec.SetField(uploadfile.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := ufuo.mutation.Filename(); ok {
		_spec.SetField(uploadfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := ufuo.mutation.FilePath(); ok {
		_spec.SetField(uploadfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := ufuo.mutation.FileExt(); ok {
		_spec.SetField(uploadfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := ufuo.mutation.Format(); ok {
		_spec.SetField(uploadfile.FieldFormat, field.TypeString, value)
	}
	if value, ok := ufuo.mutation.FileSize(); ok {
		_spec.SetField(uploadfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := ufuo.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := ufuo.mutation.Status(); ok {
		_spec.SetField(uploadfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := ufuo.mutation.UploadedAt(); ok {
		_spec.SetField(uploadfile.FieldUploadedAt, field.TypeTime, value)
	}
	if ufuo.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ufuo.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !ufuo.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ufuo.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadfile.RecordsTable,
			Columns: []string{uploadfile.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadFile{config: ufuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ufuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ufuo.mutation.done = true
	return _node, nil
}
