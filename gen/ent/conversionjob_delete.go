// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
)

// ConversionJobDelete is the builder for deleting a ConversionJob entity.
type ConversionJobDelete struct {
	config
	hooks    []Hook
	mutation *ConversionJobMutation
}

// Where appends a list predicates to the ConversionJobDelete builder.
func (cjd *ConversionJobDelete) Where(ps ...predicate.ConversionJob) *ConversionJobDelete {
	cjd.mutation.Where(ps...)
	return cjd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cjd *ConversionJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cjd.sqlExec, cjd.mutation, cjd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cjd *ConversionJobDelete) ExecX(ctx context.Context) int {
	n, err := cjd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cjd *ConversionJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conversionjob.Table, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	if ps := cjd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cjd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cjd.mutation.done = true
	return affected, err
}

// ConversionJobDeleteOne is the builder for deleting a single ConversionJob entity.
type ConversionJobDeleteOne struct {
	cjd *ConversionJobDelete
}

// Where appends a list predicates to the ConversionJobDelete builder.
func (cjdo *ConversionJobDeleteOne) Where(ps ...predicate.ConversionJob) *ConversionJobDeleteOne {
	cjdo.cjd.mutation.Where(ps...)
	return cjdo
}

// Exec executes the deletion query.
func (cjdo *ConversionJobDeleteOne) Exec(ctx context.Context) error {
	n, err := cjdo.cjd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conversionjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cjdo *ConversionJobDeleteOne) ExecX(ctx context.Context) {
	if err := cjdo.Exec(ctx); err != nil {
		panic(err)
	}
}
