// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// UploadFileCreate is the builder for creating a UploadFile entity.
type UploadFileCreate struct {
	config
	mutation *UploadFileMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (ufc *UploadFileCreate) SetOwnerID(u uuid.UUID) *UploadFileCreate {
	ufc.mutation.SetOwnerID(u)
	return ufc
}

// SetFilename sets the "filename" field.
func (ufc *UploadFileCreate) SetFilename(s string) *UploadFileCreate {
	ufc.mutation.SetFilename(s)
	return ufc
}

// SetFilePath sets the "file_path" field.
func (ufc *UploadFileCreate) SetFilePath(s string) *UploadFileCreate {
	ufc.mutation.SetFilePath(s)
	return ufc
}

// SetFileExt sets the "file_ext" field.
func (ufc *UploadFileCreate) SetFileExt(s string) *UploadFileCreate {
	ufc.mutation.SetFileExt(s)
	return ufc
}

// SetFormat sets the "format" field.
func (ufc *UploadFileCreate) SetFormat(s string) *UploadFileCreate {
	ufc.mutation.SetFormat(s)
	return ufc
}

// SetFileSize sets the "file_size" field.
func (ufc *UploadFileCreate) SetFileSize(i int) *UploadFileCreate {
	ufc.mutation.SetFileSize(i)
	return ufc
}

// SetStatus sets the "status" field.
func (ufc *UploadFileCreate) SetStatus(s string) *UploadFileCreate {
	ufc.mutation.SetStatus(s)
	return ufc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ufc *UploadFileCreate) SetNillableStatus(s *string) *UploadFileCreate {
	if s != nil {
		ufc.SetStatus(*s)
	}
	return ufc
}

// SetUploadedAt sets the "uploaded_at" field.
func (ufc *UploadFileCreate) SetUploadedAt(t time.Time) *UploadFileCreate {
	ufc.mutation.SetUploadedAt(t)
	return ufc
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (ufc *UploadFileCreate) SetNillableUploadedAt(t *time.Time) *UploadFileCreate {
	if t != nil {
		ufc.SetUploadedAt(*t)
	}
	return ufc
}

// SetID sets the "id" field.
func (ufc *UploadFileCreate) SetID(u uuid.UUID) *UploadFileCreate {
	ufc.mutation.SetID(u)
	return ufc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ufc *UploadFileCreate) SetNillableID(u *uuid.UUID) *UploadFileCreate {
	if u != nil {
		ufc.SetID(*u)
	}
	return ufc
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (ufc *UploadFileCreate) AddRecordIDs(ids ...uuid.UUID) *UploadFileCreate {
	ufc.mutation.AddRecordIDs(ids...)
	return ufc
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (ufc *UploadFileCreate) AddRecords(e ...*ExtractedRecord) *UploadFileCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ufc.AddRecordIDs(ids...)
}

// Mutation returns the UploadFileMutation object of the builder.
func (ufc *UploadFileCreate) Mutation() *UploadFileMutation {
	return ufc.mutation
}

// Save creates the UploadFile in the database.
func (ufc *UploadFileCreate) Save(ctx context.Context) (*UploadFile, error) {
	ufc.defaults()
	return withHooks(ctx, ufc.sqlSave, ufc.mutation, ufc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ufc *UploadFileCreate) SaveX(ctx context.Context) *UploadFile {
	v, err := ufc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ufc *UploadFileCreate) Exec(ctx context.Context) error {
	_, err := ufc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ufc *UploadFileCreate) ExecX(ctx context.Context) {
	if err := ufc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ufc *UploadFileCreate) defaults() {
	if _, ok := ufc.mutation.Status(); !ok {
		v := uploadfile.DefaultStatus
		ufc.mutation.SetStatus(v)
	}
	if _, ok := ufc.mutation.UploadedAt(); !ok {
		v := uploadfile.DefaultUploadedAt()
		ufc.mutation.SetUploadedAt(v)
	}
	if _, ok := ufc.mutation.ID(); !ok {
		v := uploadfile.DefaultID()
		ufc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ufc *UploadFileCreate) check() error {
	if _, ok := ufc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "UploadFile.owner_id"`)}
	}
	if _, ok := ufc.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "UploadFile.filename"`)}
	}
	if v, ok := ufc.mutation.Filename(); ok {
		if err := uploadfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadFile.filename": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "UploadFile.file_path"`)}
	}
	if v, ok := ufc.mutation.FilePath(); ok {
		if err := uploadfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_path": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "UploadFile.file_ext"`)}
	}
	if v, ok := ufc.mutation.FileExt(); ok {
		if err := uploadfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_ext": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "UploadFile.format"`)}
	}
	if v, ok := ufc.mutation.Format(); ok {
		if err := uploadfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "UploadFile.format": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "UploadFile.file_size"`)}
	}
	if v, ok := ufc.mutation.FileSize(); ok {
		if err := uploadfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadFile.file_size": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadFile.status"`)}
	}
	if v, ok := ufc.mutation.Status(); ok {
		if err := uploadfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadFile.status": %w`, err)}
		}
	}
	if _, ok := ufc.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "UploadFile.uploaded_at"`)}
	}
	return nil
}

func (ufc *UploadFileCreate) sqlSave(ctx context.Context) (*UploadFile, error) {
	if err := ufc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ufc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ufc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ufc.mutation.id = &_node.ID
	ufc.mutation.done = true
	return _node, nil
}

func (ufc *UploadFileCreate) createSpec() (*UploadFile, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadFile{config: ufc.config}
		_spec = sqlgraph.NewCreateSpec(uploadfile.Table, sqlgraph.NewFieldSpec(uploadfile.FieldID, field.TypeUUID))
	)
	if id, ok := ufc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ufc.mutation.OwnerID(); ok {
		_spec.SetField(uploadfile.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := ufc.mutation.Filename(); ok {
		_spec.SetField(uploadfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := ufc.mutation.FilePath(); ok {
		_spec.SetField(uploadfile.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := ufc.mutation.FileExt(); ok {
		_spec.SetField(uploadfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := ufc.mutation.Format(); ok {
		_spec.SetField(uploadfile.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := ufc.mutation.FileSize(); ok {
		_spec.SetField(uploadfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := ufc.mutation.Status(); ok {
		_spec.SetField(uploadfile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ufc.mutation.UploadedAt(); ok {
		_spec.SetField(uploadfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := ufc.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadFileCreateBulk is the builder for creating many UploadFile entities in bulk.
type UploadFileCreateBulk struct {
	config
	err      error
	builders []*UploadFileCreate
}

// Save creates the UploadFile entities in the database.
func (ufcb *UploadFileCreateBulk) Save(ctx context.Context) ([]*UploadFile, error) {
	if ufcb.err != nil {
		return nil, ufcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ufcb.builders))
	nodes := make([]*UploadFile, len(ufcb.builders))
	mutators := make([]Mutator, len(ufcb.builders))
	for i := range ufcb.builders {
		func(i int, root context.Context) {
			builder := ufcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadFileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, ufcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ufcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, ufcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ufcb *UploadFileCreateBulk) SaveX(ctx context.Context) []*UploadFile {
	v, err := ufcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ufcb *UploadFileCreateBulk) Exec(ctx context.Context) error {
	_, err := ufcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ufcb *UploadFileCreateBulk) ExecX(ctx context.Context) {
	if err := ufcb.Exec(ctx); err != nil {
		panic(err)
	}
}
