// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
)

// ConversionJobUpdate is the builder for updating ConversionJob entities.
type ConversionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ConversionJobMutation
}

// Where appends a list predicates to the ConversionJobUpdate builder.
func (cju *ConversionJobUpdate) Where(ps ...predicate.ConversionJob) *ConversionJobUpdate {
	cju.mutation.Where(ps...)
	return cju
}

// SetOwnerID sets the "owner_id" field.
func (cju *ConversionJobUpdate) SetOwnerID(u uuid.UUID) *ConversionJobUpdate {
	cju.mutation.SetOwnerID(u)
	return cju
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableOwnerID(u *uuid.UUID) *ConversionJobUpdate {
	if u != nil {
		cju.SetOwnerID(*u)
	}
	return cju
}

// SetName sets the "name" field.
func (cju *ConversionJobUpdate) SetName(s string) *ConversionJobUpdate {
	cju.mutation.SetName(s)
	return cju
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableName(s *string) *ConversionJobUpdate {
	if s != nil {
		cju.SetName(*s)
	}
	return cju
}

// ClearName clears the value of the "name" field.
func (cju *ConversionJobUpdate) ClearName() *ConversionJobUpdate {
	cju.mutation.ClearName()
	return cju
}

// SetFileIds sets the "file_ids" field.
func (cju *ConversionJobUpdate) SetFileIds(u []uuid.UUID) *ConversionJobUpdate {
	cju.mutation.SetFileIds(u)
	return cju
}

// AppendFileIds appends u to the "file_ids" field.
func (cju *ConversionJobUpdate) AppendFileIds(u []uuid.UUID) *ConversionJobUpdate {
	cju.mutation.AppendFileIds(u)
	return cju
}

// SetTotalFiles sets the "total_files" field.
func (cju *ConversionJobUpdate) SetTotalFiles(i int) *ConversionJobUpdate {
	cju.mutation.ResetTotalFiles()
	cju.mutation.SetTotalFiles(i)
	return cju
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableTotalFiles(i *int) *ConversionJobUpdate {
	if i != nil {
		cju.SetTotalFiles(*i)
	}
	return cju
}

// AddTotalFiles adds i to the "total_files" field.
func (cju *ConversionJobUpdate) AddTotalFiles(i int) *ConversionJobUpdate {
	cju.mutation.AddTotalFiles(i)
	return cju
}

// SetProcessedFiles sets the "processed_files" field.
func (cju *ConversionJobUpdate) SetProcessedFiles(i int) *ConversionJobUpdate {
	cju.mutation.ResetProcessedFiles()
	cju.mutation.SetProcessedFiles(i)
	return cju
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableProcessedFiles(i *int) *ConversionJobUpdate {
	if i != nil {
		cju.SetProcessedFiles(*i)
	}
	return cju
}

// AddProcessedFiles adds i to the "processed_files" field.
func (cju *ConversionJobUpdate) AddProcessedFiles(i int) *ConversionJobUpdate {
	cju.mutation.AddProcessedFiles(i)
	return cju
}

// SetStatus sets the "status" field.
func (cju *ConversionJobUpdate) SetStatus(s string) *ConversionJobUpdate {
	cju.mutation.SetStatus(s)
	return cju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableStatus(s *string) *ConversionJobUpdate {
	if s != nil {
		cju.SetStatus(*s)
	}
	return cju
}

// SetErrorMessage sets the "error_message" field.
func (cju *ConversionJobUpdate) SetErrorMessage(s string) *ConversionJobUpdate {
	cju.mutation.SetErrorMessage(s)
	return cju
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableErrorMessage(s *string) *ConversionJobUpdate {
	if s != nil {
		cju.SetErrorMessage(*s)
	}
	return cju
}

// ClearErrorMessage clears the value of the "error_message" field.
func (cju *ConversionJobUpdate) ClearErrorMessage() *ConversionJobUpdate {
	cju.mutation.ClearErrorMessage()
	return cju
}

// SetStartedAt sets the "started_at" field.
func (cju *ConversionJobUpdate) SetStartedAt(t time.Time) *ConversionJobUpdate {
	cju.mutation.SetStartedAt(t)
	return cju
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableStartedAt(t *time.Time) *ConversionJobUpdate {
	if t != nil {
		cju.SetStartedAt(*t)
	}
	return cju
}

// ClearStartedAt clears the value of the "started_at" field.
func (cju *ConversionJobUpdate) ClearStartedAt() *ConversionJobUpdate {
	cju.mutation.ClearStartedAt()
	return cju
}

// SetCompletedAt sets the "completed_at" field.
func (cju *ConversionJobUpdate) SetCompletedAt(t time.Time) *ConversionJobUpdate {
	cju.mutation.SetCompletedAt(t)
	return cju
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableCompletedAt(t *time.Time) *ConversionJobUpdate {
	if t != nil {
		cju.SetCompletedAt(*t)
	}
	return cju
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (cju *ConversionJobUpdate) ClearCompletedAt() *ConversionJobUpdate {
	cju.mutation.ClearCompletedAt()
	return cju
}

// SetCreatedAt sets the "created_at" field.
func (cju *ConversionJobUpdate) SetCreatedAt(t time.Time) *ConversionJobUpdate {
	cju.mutation.SetCreatedAt(t)
	return cju
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cju *ConversionJobUpdate) SetNillableCreatedAt(t *time.Time) *ConversionJobUpdate {
	if t != nil {
		cju.SetCreatedAt(*t)
	}
	return cju
}

// SetUpdatedAt sets the "updated_at" field.
func (cju *ConversionJobUpdate) SetUpdatedAt(t time.Time) *ConversionJobUpdate {
	cju.mutation.SetUpdatedAt(t)
	return cju
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (cju *ConversionJobUpdate) AddRecordIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	cju.mutation.AddRecordIDs(ids...)
	return cju
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (cju *ConversionJobUpdate) AddRecords(e ...*ExtractedRecord) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return cju.AddRecordIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (cju *ConversionJobUpdate) Mutation() *ConversionJobMutation {
	return cju.mutation
}

// ClearRecords clears all "records" edges to the ExtractedRecord entity.
func (cju *ConversionJobUpdate) ClearRecords() *ConversionJobUpdate {
	cju.mutation.ClearRecords()
	return cju
}

// RemoveRecordIDs removes the "records" edge to ExtractedRecord entities by IDs.
func (cju *ConversionJobUpdate) RemoveRecordIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	cju.mutation.RemoveRecordIDs(ids...)
	return cju
}

// RemoveRecords removes "records" edges to ExtractedRecord entities.
func (cju *ConversionJobUpdate) RemoveRecords(e ...*ExtractedRecord) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return cju.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cju *ConversionJobUpdate) Save(ctx context.Context) (int, error) {
	cju.defaults()
	return withHooks(ctx, cju.sqlSave, cju.mutation, cju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cju *ConversionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := cju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cju *ConversionJobUpdate) Exec(ctx context.Context) error {
	_, err := cju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cju *ConversionJobUpdate) ExecX(ctx context.Context) {
	if err := cju.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cju *ConversionJobUpdate) defaults() {
	if _, ok := cju.mutation.UpdatedAt(); !ok {
		v := conversionjob.UpdateDefaultUpdatedAt()
		cju.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cju *ConversionJobUpdate) check() error {
	if v, ok := cju.mutation.TotalFiles(); ok {
		if err := conversionjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_files": %w`, err)}
		}
	}
	if v, ok := cju.mutation.ProcessedFiles(); ok {
		if err := conversionjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.processed_files": %w`, err)}
		}
	}
	if v, ok := cju.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	return nil
}

func (cju *ConversionJobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	if ps := cju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cju.mutation.OwnerID(); ok {
		_spec.SetField(conversionjob.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := cju.mutation.Name(); ok {
		_spec.SetField(conversionjob.FieldName, field.TypeString, value)
	}
	if cju.mutation.NameCleared() {
		_spec.ClearField(conversionjob.FieldName, field.TypeString)
	}
	if value, ok := cju.mutation.FileIds(); ok {
		_spec.SetField(conversionjob.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := cju.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversionjob.FieldFileIds, value)
		})
	}
	if value, ok := cju.mutation.TotalFiles(); ok {
		_spec.SetField(conversionjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := cju.mutation.AddedTotalFiles(); ok {
		_spec.AddField(conversionjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := cju.mutation.ProcessedFiles(); ok {
		_spec.SetField(conversionjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := cju.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(conversionjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := cju.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := cju.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
	}
	if cju.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := cju.mutation.StartedAt(); ok {
		_spec.SetField(conversionjob.FieldStartedAt, field.TypeTime, value)
	}
	if cju.mutation.StartedAtCleared() {
		_spec.ClearField(conversionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := cju.mutation.CompletedAt(); ok {
		_spec.SetField(conversionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if cju.mutation.CompletedAtCleared() {
		_spec.ClearField(conversionjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := cju.mutation.CreatedAt(); ok {
		_spec.SetField(conversionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cju.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if cju.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cju.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !cju.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cju.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cju.mutation.done = true
	return n, nil
}

// ConversionJobUpdateOne is the builder for updating a single ConversionJob entity.
type ConversionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversionJobMutation
}

// SetOwnerID sets the "owner_id" field.
func (cjuo *ConversionJobUpdateOne) SetOwnerID(u uuid.UUID) *ConversionJobUpdateOne {
	cjuo.mutation.SetOwnerID(u)
	return cjuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableOwnerID(u *uuid.UUID) *ConversionJobUpdateOne {
	if u != nil {
		cjuo.SetOwnerID(*u)
	}
	return cjuo
}

// SetName sets the "name" field.
func (cjuo *ConversionJobUpdateOne) SetName(s string) *ConversionJobUpdateOne {
	cjuo.mutation.SetName(s)
	return cjuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableName(s *string) *ConversionJobUpdateOne {
	if s != nil {
		cjuo.SetName(*s)
	}
	return cjuo
}

// ClearName clears the value of the "name" field.
func (cjuo *ConversionJobUpdateOne) ClearName() *ConversionJobUpdateOne {
	cjuo.mutation.ClearName()
	return cjuo
}

// SetFileIds sets the "file_ids" field.
func (cjuo *ConversionJobUpdateOne) SetFileIds(u []uuid.UUID) *ConversionJobUpdateOne {
	cjuo.mutation.SetFileIds(u)
	return cjuo
}

// AppendFileIds appends u to the "file_ids" field.
func (cjuo *ConversionJobUpdateOne) AppendFileIds(u []uuid.UUID) *ConversionJobUpdateOne {
	cjuo.mutation.AppendFileIds(u)
	return cjuo
}

// SetTotalFiles sets the "total_files" field.
func (cjuo *ConversionJobUpdateOne) SetTotalFiles(i int) *ConversionJobUpdateOne {
	cjuo.mutation.ResetTotalFiles()
	cjuo.mutation.SetTotalFiles(i)
	return cjuo
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableTotalFiles(i *int) *ConversionJobUpdateOne {
	if i != nil {
		cjuo.SetTotalFiles(*i)
	}
	return cjuo
}

// AddTotalFiles adds i to the "total_files" field.
func (cjuo *ConversionJobUpdateOne) AddTotalFiles(i int) *ConversionJobUpdateOne {
	cjuo.mutation.AddTotalFiles(i)
	return cjuo
}

// SetProcessedFiles sets the "processed_files" field.
func (cjuo *ConversionJobUpdateOne) SetProcessedFiles(i int) *ConversionJobUpdateOne {
	cjuo.mutation.ResetProcessedFiles()
	cjuo.mutation.SetProcessedFiles(i)
	return cjuo
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableProcessedFiles(i *int) *ConversionJobUpdateOne {
	if i != nil {
		cjuo.SetProcessedFiles(*i)
	}
	return cjuo
}

// AddProcessedFiles adds i to the "processed_files" field.
func (cjuo *ConversionJobUpdateOne) AddProcessedFiles(i int) *ConversionJobUpdateOne {
	cjuo.mutation.AddProcessedFiles(i)
	return cjuo
}

// SetStatus sets the "status" field.
func (cjuo *ConversionJobUpdateOne) SetStatus(s string) *ConversionJobUpdateOne {
	cjuo.mutation.SetStatus(s)
	return cjuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableStatus(s *string) *ConversionJobUpdateOne {
	if s != nil {
		cjuo.SetStatus(*s)
	}
	return cjuo
}

// SetErrorMessage sets the "error_message" field.
func (cjuo *ConversionJobUpdateOne) SetErrorMessage(s string) *ConversionJobUpdateOne {
	cjuo.mutation.SetErrorMessage(s)
	return cjuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableErrorMessage(s *string) *ConversionJobUpdateOne {
	if s != nil {
		cjuo.SetErrorMessage(*s)
	}
	return cjuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (cjuo *ConversionJobUpdateOne) ClearErrorMessage() *ConversionJobUpdateOne {
	cjuo.mutation.ClearErrorMessage()
	return cjuo
}

// SetStartedAt sets the "started_at" field.
func (cjuo *ConversionJobUpdateOne) SetStartedAt(t time.Time) *ConversionJobUpdateOne {
	cjuo.mutation.SetStartedAt(t)
	return cjuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableStartedAt(t *time.Time) *ConversionJobUpdateOne {
	if t != nil {
		cjuo.SetStartedAt(*t)
	}
	return cjuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (cjuo *ConversionJobUpdateOne) ClearStartedAt() *ConversionJobUpdateOne {
	cjuo.mutation.ClearStartedAt()
	return cjuo
}

// SetCompletedAt sets the "completed_at" field.
func (cjuo *ConversionJobUpdateOne) SetCompletedAt(t time.Time) *ConversionJobUpdateOne {
	cjuo.mutation.SetCompletedAt(t)
	return cjuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableCompletedAt(t *time.Time) *ConversionJobUpdateOne {
	if t != nil {
		cjuo.SetCompletedAt(*t)
	}
	return cjuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (cjuo *ConversionJobUpdateOne) ClearCompletedAt() *ConversionJobUpdateOne {
	cjuo.mutation.ClearCompletedAt()
	return cjuo
}

// SetCreatedAt sets the "created_at" field.
func (cjuo *ConversionJobUpdateOne) SetCreatedAt(t time.Time) *ConversionJobUpdateOne {
	cjuo.mutation.SetCreatedAt(t)
	return cjuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cjuo *ConversionJobUpdateOne) SetNillableCreatedAt(t *time.Time) *ConversionJobUpdateOne {
	if t != nil {
		cjuo.SetCreatedAt(*t)
	}
	return cjuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cjuo *ConversionJobUpdateOne) SetUpdatedAt(t time.Time) *ConversionJobUpdateOne {
	cjuo.mutation.SetUpdatedAt(t)
	return cjuo
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by IDs.
func (cjuo *ConversionJobUpdateOne) AddRecordIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	cjuo.mutation.AddRecordIDs(ids...)
	return cjuo
}

// AddRecords adds the "records" edges to the ExtractedRecord entity.
func (cjuo *ConversionJobUpdateOne) AddRecords(e ...*ExtractedRecord) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return cjuo.AddRecordIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (cjuo *ConversionJobUpdateOne) Mutation() *ConversionJobMutation {
	return cjuo.mutation
}

// ClearRecords clears all "records" edges to the ExtractedRecord entity.
func (cjuo *ConversionJobUpdateOne) ClearRecords() *ConversionJobUpdateOne {
	cjuo.mutation.ClearRecords()
	return cjuo
}

// RemoveRecordIDs removes the "records" edge to ExtractedRecord entities by IDs.
func (cjuo *ConversionJobUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	cjuo.mutation.RemoveRecordIDs(ids...)
	return cjuo
}

// RemoveRecords removes "records" edges to ExtractedRecord entities.
func (cjuo *ConversionJobUpdateOne) RemoveRecords(e ...*ExtractedRecord) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return cjuo.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the ConversionJobUpdate builder.
func (cjuo *ConversionJobUpdateOne) Where(ps ...predicate.ConversionJob) *ConversionJobUpdateOne {
	cjuo.mutation.Where(ps...)
	return cjuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cjuo *ConversionJobUpdateOne) Select(field string, fields ...string) *ConversionJobUpdateOne {
	cjuo.fields = append([]string{field}, fields...)
	return cjuo
}

// Save executes the query and returns the updated ConversionJob entity.
func (cjuo *ConversionJobUpdateOne) Save(ctx context.Context) (*ConversionJob, error) {
	cjuo.defaults()
	return withHooks(ctx, cjuo.sqlSave, cjuo.mutation, cjuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cjuo *ConversionJobUpdateOne) SaveX(ctx context.Context) *ConversionJob {
	node, err := cjuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cjuo *ConversionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := cjuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cjuo *ConversionJobUpdateOne) ExecX(ctx context.Context) {
	if err := cjuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cjuo *ConversionJobUpdateOne) defaults() {
	if _, ok := cjuo.mutation.UpdatedAt(); !ok {
		v := conversionjob.UpdateDefaultUpdatedAt()
		cjuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cjuo *ConversionJobUpdateOne) check() error {
	if v, ok := cjuo.mutation.TotalFiles(); ok {
		if err := conversionjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_files": %w`, err)}
		}
	}
	if v, ok := cjuo.mutation.ProcessedFiles(); ok {
		if err := conversionjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.processed_files": %w`, err)}
		}
	}
	if v, ok := cjuo.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	return nil
}

func (cjuo *ConversionJobUpdateOne) sqlSave(ctx context.Context) (_node *ConversionJob, err error) {
	if err := cjuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	id, ok := cjuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cjuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversionjob.FieldID)
		for _, f := range fields {
			if !conversionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cjuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cjuo.mutation.OwnerID(); ok {
		_spec.SetField(conversionjob.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := cjuo.mutation.Name(); ok {
		_spec.SetField(conversionjob.FieldName, field.TypeString, value)
	}
	if cjuo.mutation.NameCleared() {
		_spec.ClearField(conversionjob.FieldName, field.TypeString)
	}
	if value, ok := cjuo.mutation.FileIds(); ok {
		_spec.SetField(conversionjob.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := cjuo.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversionjob.FieldFileIds, value)
		})
	}
	if value, ok := cjuo.mutation.TotalFiles(); ok {
		_spec.SetField(conversionjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := cjuo.mutation.AddedTotalFiles(); ok {
		_spec.AddField(conversionjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := cjuo.mutation.ProcessedFiles(); ok {
		_spec.SetField(conversionjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := cjuo.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(conversionjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := cjuo.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := cjuo.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
	}
	if cjuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := cjuo.mutation.StartedAt(); ok {
		_spec.SetField(conversionjob.FieldStartedAt, field.TypeTime, value)
	}
	if cjuo.mutation.StartedAtCleared() {
		_spec.ClearField(conversionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := cjuo.mutation.CompletedAt(); ok {
		_spec.SetField(conversionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if cjuo.mutation.CompletedAtCleared() {
		_spec.ClearField(conversionjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := cjuo.mutation.CreatedAt(); ok {
		_spec.SetField(conversionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cjuo.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if cjuo.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cjuo.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !cjuo.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cjuo.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConversionJob{config: cjuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cjuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cjuo.mutation.done = true
	return _node, nil
}
