// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
)

// ExtractedRecordDelete is the builder for deleting a ExtractedRecord entity.
type ExtractedRecordDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedRecordMutation
}

// Where appends a list predicates to the ExtractedRecordDelete builder.
func (erd *ExtractedRecordDelete) Where(ps ...predicate.ExtractedRecord) *ExtractedRecordDelete {
	erd.mutation.Where(ps...)
	return erd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (erd *ExtractedRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, erd.sqlExec, erd.mutation, erd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (erd *ExtractedRecordDelete) ExecX(ctx context.Context) int {
	n, err := erd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (erd *ExtractedRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedrecord.Table, sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID))
	if ps := erd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, erd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	erd.mutation.done = true
	return affected, err
}

// ExtractedRecordDeleteOne is the builder for deleting a single ExtractedRecord entity.
type ExtractedRecordDeleteOne struct {
	erd *ExtractedRecordDelete
}

// Where appends a list predicates to the ExtractedRecordDelete builder.
func (erdo *ExtractedRecordDeleteOne) Where(ps ...predicate.ExtractedRecord) *ExtractedRecordDeleteOne {
	erdo.erd.mutation.Where(ps...)
	return erdo
}

// Exec executes the deletion query.
func (erdo *ExtractedRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := erdo.erd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (erdo *ExtractedRecordDeleteOne) ExecX(ctx context.Context) {
	if err := erdo.Exec(ctx); err != nil {
		panic(err)
	}
}
