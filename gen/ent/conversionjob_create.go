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
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
)

// ConversionJobCreate is the builder for creating a ConversionJob entity.
type ConversionJobCreate struct {
	config
	mutation *ConversionJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (cjc *ConversionJobCreate) SetOwnerID(u uuid.UUID) *ConversionJobCreate {
	cjc.mutation.SetOwnerID(u)
	return cjc
}

// SetName sets the "name" field.
func (cjc *ConversionJobCreate) SetName(s string) *ConversionJobCreate {
	cjc.mutation.SetName(s)
	return cjc
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableName(s *string) *ConversionJobCreate {
	if s != nil {
		cjc.SetName(*s)
	}
	return cjc
}

// SetFileIds sets the "file_ids" field.
func (cjc *ConversionJobCreate) SetFileIds(u []uuid.UUID) *ConversionJobCreate {
	cjc.mutation.SetFileIds(u)
	return cjc
}

// SetTotalFiles sets the "total_files" field.
func (cjc *ConversionJobCreate) SetTotalFiles(i int) *ConversionJobCreate {
	cjc.mutation.SetTotalFiles(i)
	return cjc
}

// SetProcessedFiles sets the "processed_files" field.
func (cjc *ConversionJobCreate) SetProcessedFiles(i int) *ConversionJobCreate {
	cjc.mutation.SetProcessedFiles(i)
	return cjc
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableProcessedFiles(i *int) *ConversionJobCreate {
	if i != nil {
		cjc.SetProcessedFiles(*i)
	}
	return cjc
}

// SetStatus sets the "status" field.
func (cjc *ConversionJobCreate) SetStatus(s string) *ConversionJobCreate {
	cjc.mutation.SetStatus(s)
	return cjc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableStatus(s *string) *ConversionJobCreate {
	if s != nil {
		cjc.SetStatus(*s)
	}
	return cjc
}

// SetErrorMessage sets the "error_message" field.
func (cjc *ConversionJobCreate) SetErrorMessage(s string) *ConversionJobCreate {
	cjc.mutation.SetErrorMessage(s)
	return cjc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableErrorMessage(s *string) *ConversionJobCreate {
	if s != nil {
		cjc.SetErrorMessage(*s)
	}
	return cjc
}

// SetStartedAt sets the "started_at" field.
func (cjc *ConversionJobCreate) SetStartedAt(t time.Time) *ConversionJobCreate {
	cjc.mutation.SetStartedAt(t)
	return cjc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableStartedAt(t *time.Time) *ConversionJobCreate {
	if t != nil {
		cjc.SetStartedAt(*t)
	}
	return cjc
}

// SetCompletedAt sets the "completed_at" field.
func (cjc *ConversionJobCreate) SetCompletedAt(t time.Time) *ConversionJobCreate {
	cjc.mutation.SetCompletedAt(t)
	return cjc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableCompletedAt(t *time.Time) *ConversionJobCreate {
	if t != nil {
		cjc.SetCompletedAt(*t)
	}
	return cjc
}

// SetCreatedAt sets the "created_at" field.
func (cjc *ConversionJobCreate) SetCreatedAt(t time.Time) *ConversionJobCreate {
	cjc.mutation.SetCreatedAt(t)
	return cjc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableCreatedAt(t *time.Time) *ConversionJobCreate {
	if t != nil {
		cjc.SetCreatedAt(*t)
	}
	return cjc
}

// SetUpdatedAt sets the "updated_at" field.
func (cjc *ConversionJobCreate) SetUpdatedAt(t time.Time) *ConversionJobCreate {
	cjc.mutation.SetUpdatedAt(t)
	return cjc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableUpdatedAt(t *time.Time) *ConversionJobCreate {
	if t != nil {
		cjc.SetUpdatedAt(*t)
	}
	return cjc
}

// SetID sets the "id" field.
func (cjc *ConversionJobCreate) SetID(u uuid.UUID) *ConversionJobCreate {
	cjc.mutation.SetID(u)
	return cjc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cjc *ConversionJobCreate) SetNillableID(u *uuid.UUID) *ConversionJobCreate {
	if u != nil {
		cjc.SetID(*u)
	}
	return cjc
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (cjc *ConversionJobCreate) AddRecordIDs(ids ...uuid.UUID) *ConversionJobCreate {
	cjc.mutation.AddRecordIDs(ids...)
	return cjc
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (cjc *ConversionJobCreate) AddRecords(e ...*ExtractedRecord) *ConversionJobCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return cjc.AddRecordIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (cjc *ConversionJobCreate) Mutation() *ConversionJobMutation {
	return cjc.mutation
}

// Save creates the ConversionJob in the database.
func (cjc *ConversionJobCreate) Save(ctx context.Context) (*ConversionJob, error) {
	cjc.defaults()
	return withHooks(ctx, cjc.sqlSave, cjc.mutation, cjc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cjc *ConversionJobCreate) SaveX(ctx context.Context) *ConversionJob {
	v, err := cjc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cjc *ConversionJobCreate) Exec(ctx context.Context) error {
	_, err := cjc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjc *ConversionJobCreate) ExecX(ctx context.Context) {
	if err := cjc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cjc *ConversionJobCreate) defaults() {
	if _, ok := cjc.mutation.ProcessedFiles(); !ok {
		v := conversionjob.DefaultProcessedFiles
		cjc.mutation.SetProcessedFiles(v)
	}
	if _, ok := cjc.mutation.Status(); !ok {
		v := conversionjob.DefaultStatus
		cjc.mutation.SetStatus(v)
	}
	if _, ok := cjc.mutation.CreatedAt(); !ok {
		v := conversionjob.DefaultCreatedAt()
		cjc.mutation.SetCreatedAt(v)
	}
	if _, ok := cjc.mutation.UpdatedAt(); !ok {
		v := conversionjob.DefaultUpdatedAt()
		cjc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cjc.mutation.ID(); !ok {
		v := conversionjob.DefaultID()
		cjc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cjc *ConversionJobCreate) check() error {
	if _, ok := cjc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ConversionJob.owner_id"`)}
	}
	if _, ok := cjc.mutation.FileIds(); !ok {
		return &ValidationError{Name: "file_ids", err: errors.New(`ent: missing required field "ConversionJob.file_ids"`)}
	}
	if _, ok := cjc.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "ConversionJob.total_files"`)}
	}
	if v, ok := cjc.mutation.TotalFiles(); ok {
		if err := conversionjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_files": %w`, err)}
		}
	}
	if _, ok := cjc.mutation.ProcessedFiles(); !ok {
		return &ValidationError{Name: "processed_files", err: errors.New(`ent: missing required field "ConversionJob.processed_files"`)}
	}
	if v, ok := cjc.mutation.ProcessedFiles(); ok {
		if err := conversionjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.processed_files": %w`, err)}
		}
	}
	if _, ok := cjc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConversionJob.status"`)}
	}
	if v, ok := cjc.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	if _, ok := cjc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversionJob.created_at"`)}
	}
	if _, ok := cjc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversionJob.updated_at"`)}
	}
	return nil
}

func (cjc *ConversionJobCreate) sqlSave(ctx context.Context) (*ConversionJob, error) {
	if err := cjc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cjc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cjc.driver, _spec); err != nil {
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
	cjc.mutation.id = &_node.ID
	cjc.mutation.done = true
	return _node, nil
}

func (cjc *ConversionJobCreate) createSpec() (*ConversionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversionJob{config: cjc.config}
		_spec = sqlgraph.NewCreateSpec(conversionjob.Table, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	)
	if id, ok := cjc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cjc.mutation.OwnerID(); ok {
		_spec.SetField(conversionjob.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := cjc.mutation.Name(); ok {
		_spec.SetField(conversionjob.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := cjc.mutation.FileIds(); ok {
		_spec.SetField(conversionjob.FieldFileIds, field.TypeJSON, value)
		_node.FileIds = value
	}
	if value, ok := cjc.mutation.TotalFiles(); ok {
		_spec.SetField(conversionjob.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := cjc.mutation.ProcessedFiles(); ok {
		_spec.SetField(conversionjob.FieldProcessedFiles, field.TypeInt, value)
		_node.ProcessedFiles = value
	}
	if value, ok := cjc.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cjc.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := cjc.mutation.StartedAt(); ok {
		_spec.SetField(conversionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := cjc.mutation.CompletedAt(); ok {
		_spec.SetField(conversionjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := cjc.mutation.CreatedAt(); ok {
		_spec.SetField(conversionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cjc.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := cjc.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.RecordsTable,
			Columns: []string{conversionjob.RecordsColumn},
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

// ConversionJobCreateBulk is the builder for creating many ConversionJob entities in bulk.
type ConversionJobCreateBulk struct {
	config
	err      error
	builders []*ConversionJobCreate
}

// Save creates the ConversionJob entities in the database.
func (cjcb *ConversionJobCreateBulk) Save(ctx context.Context) ([]*ConversionJob, error) {
	if cjcb.err != nil {
		return nil, cjcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cjcb.builders))
	nodes := make([]*ConversionJob, len(cjcb.builders))
	mutators := make([]Mutator, len(cjcb.builders))
	for i := range cjcb.builders {
		func(i int, root context.Context) {
			builder := cjcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversionJobMutation)
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
					_, err = mutators[i+1].Mutate(root, cjcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cjcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cjcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cjcb *ConversionJobCreateBulk) SaveX(ctx context.Context) []*ConversionJob {
	v, err := cjcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cjcb *ConversionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := cjcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjcb *ConversionJobCreateBulk) ExecX(ctx context.Context) {
	if err := cjcb.Exec(ctx); err != nil {
		panic(err)
	}
}
