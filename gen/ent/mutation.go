// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversionJob   = "ConversionJob"
	TypeExtractedRecord = "ExtractedRecord"
	TypeUploadFile      = "UploadFile"
)

// ConversionJobMutation represents an operation that mutates the ConversionJob nodes in the graph.
type ConversionJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	name               *string
	file_ids           *[]uuid.UUID
	appendfile_ids     []uuid.UUID
	total_files        *int
	addtotal_files     *int
	processed_files    *int
	addprocessed_files *int
	status             *string
	error_message      *string
	started_at         *time.Time
	completed_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	records            map[uuid.UUID]struct{}
	removedrecords     map[uuid.UUID]struct{}
	clearedrecords     bool
	done               bool
	oldValue           func(context.Context) (*ConversionJob, error)
	predicates         []predicate.ConversionJob
}

var _ ent.Mutation = (*ConversionJobMutation)(nil)

// conversionjobOption allows management of the mutation configuration using functional options.
type conversionjobOption func(*ConversionJobMutation)

// newConversionJobMutation creates new mutation for the ConversionJob entity.
func newConversionJobMutation(c config, op Op, opts ...conversionjobOption) *ConversionJobMutation {
	m := &ConversionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeConversionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversionJobID sets the ID field of the mutation.
func withConversionJobID(id uuid.UUID) conversionjobOption {
	return func(m *ConversionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversionJob
		)
		m.oldValue = func(ctx context.Context) (*ConversionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversionJob sets the old ConversionJob of the mutation.
func withConversionJob(node *ConversionJob) conversionjobOption {
	return func(m *ConversionJobMutation) {
		m.oldValue = func(context.Context) (*ConversionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversionJob entities.
func (m *ConversionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ConversionJobMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ConversionJobMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ConversionJobMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *ConversionJobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConversionJobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ConversionJobMutation) ClearName() {
	m.name = nil
	m.clearedFields[conversionjob.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ConversionJobMutation) NameCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ConversionJobMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, conversionjob.FieldName)
}

// SetFileIds sets the "file_ids" field.
func (m *ConversionJobMutation) SetFileIds(u []uuid.UUID) {
	m.file_ids = &u
	m.appendfile_ids = nil
}

// FileIds returns the value of the "file_ids" field in the mutation.
func (m *ConversionJobMutation) FileIds() (r []uuid.UUID, exists bool) {
	v := m.file_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFileIds returns the old "file_ids" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldFileIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileIds: %w", err)
	}
	return oldValue.FileIds, nil
}

// AppendFileIds adds u to the "file_ids" field.
func (m *ConversionJobMutation) AppendFileIds(u []uuid.UUID) {
	m.appendfile_ids = append(m.appendfile_ids, u...)
}

// AppendedFileIds returns the list of values that were appended to the "file_ids" field in this mutation.
func (m *ConversionJobMutation) AppendedFileIds() ([]uuid.UUID, bool) {
	if len(m.appendfile_ids) == 0 {
		return nil, false
	}
	return m.appendfile_ids, true
}

// ResetFileIds resets all changes to the "file_ids" field.
func (m *ConversionJobMutation) ResetFileIds() {
	m.file_ids = nil
	m.appendfile_ids = nil
}

// SetTotalFiles sets the "total_files" field.
func (m *ConversionJobMutation) SetTotalFiles(i int) {
	m.total_files = &i
	m.addtotal_files = nil
}

// TotalFiles returns the value of the "total_files" field in the mutation.
func (m *ConversionJobMutation) TotalFiles() (r int, exists bool) {
	v := m.total_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFiles returns the old "total_files" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldTotalFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFiles: %w", err)
	}
	return oldValue.TotalFiles, nil
}

// AddTotalFiles adds i to the "total_files" field.
func (m *ConversionJobMutation) AddTotalFiles(i int) {
	if m.addtotal_files != nil {
		*m.addtotal_files += i
	} else {
		m.addtotal_files = &i
	}
}

// AddedTotalFiles returns the value that was added to the "total_files" field in this mutation.
func (m *ConversionJobMutation) AddedTotalFiles() (r int, exists bool) {
	v := m.addtotal_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFiles resets all changes to the "total_files" field.
func (m *ConversionJobMutation) ResetTotalFiles() {
	m.total_files = nil
	m.addtotal_files = nil
}

// SetProcessedFiles sets the "processed_files" field.
func (m *ConversionJobMutation) SetProcessedFiles(i int) {
	m.processed_files = &i
	m.addprocessed_files = nil
}

// ProcessedFiles returns the value of the "processed_files" field in the mutation.
func (m *ConversionJobMutation) ProcessedFiles() (r int, exists bool) {
	v := m.processed_files
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedFiles returns the old "processed_files" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldProcessedFiles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedFiles: %w", err)
	}
	return oldValue.ProcessedFiles, nil
}

// AddProcessedFiles adds i to the "processed_files" field.
func (m *ConversionJobMutation) AddProcessedFiles(i int) {
	if m.addprocessed_files != nil {
		*m.addprocessed_files += i
	} else {
		m.addprocessed_files = &i
	}
}

// AddedProcessedFiles returns the value that was added to the "processed_files" field in this mutation.
func (m *ConversionJobMutation) AddedProcessedFiles() (r int, exists bool) {
	v := m.addprocessed_files
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedFiles resets all changes to the "processed_files" field.
func (m *ConversionJobMutation) ResetProcessedFiles() {
	m.processed_files = nil
	m.addprocessed_files = nil
}

// SetStatus sets the "status" field.
func (m *ConversionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversionJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ConversionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ConversionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ConversionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[conversionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ConversionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ConversionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, conversionjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ConversionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ConversionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ConversionJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[conversionjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ConversionJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ConversionJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, conversionjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ConversionJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ConversionJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ConversionJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[conversionjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ConversionJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ConversionJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, conversionjob.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by ids.
func (m *ConversionJobMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the ExtractedRecord entity.
func (m *ConversionJobMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the ExtractedRecord entity was cleared.
func (m *ConversionJobMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the ExtractedRecord entity by IDs.
func (m *ConversionJobMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the ExtractedRecord entity.
func (m *ConversionJobMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ConversionJobMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ConversionJobMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the ConversionJobMutation builder.
func (m *ConversionJobMutation) Where(ps ...predicate.ConversionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversionJob).
func (m *ConversionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversionJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner_id != nil {
		fields = append(fields, conversionjob.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, conversionjob.FieldName)
	}
	if m.file_ids != nil {
		fields = append(fields, conversionjob.FieldFileIds)
	}
	if m.total_files != nil {
		fields = append(fields, conversionjob.FieldTotalFiles)
	}
	if m.processed_files != nil {
		fields = append(fields, conversionjob.FieldProcessedFiles)
	}
	if m.status != nil {
		fields = append(fields, conversionjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, conversionjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, conversionjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, conversionjob.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, conversionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversionjob.FieldOwnerID:
		return m.OwnerID()
	case conversionjob.FieldName:
		return m.Name()
	case conversionjob.FieldFileIds:
		return m.FileIds()
	case conversionjob.FieldTotalFiles:
		return m.TotalFiles()
	case conversionjob.FieldProcessedFiles:
		return m.ProcessedFiles()
	case conversionjob.FieldStatus:
		return m.Status()
	case conversionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case conversionjob.FieldStartedAt:
		return m.StartedAt()
	case conversionjob.FieldCompletedAt:
		return m.CompletedAt()
	case conversionjob.FieldCreatedAt:
		return m.CreatedAt()
	case conversionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversionjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case conversionjob.FieldName:
		return m.OldName(ctx)
	case conversionjob.FieldFileIds:
		return m.OldFileIds(ctx)
	case conversionjob.FieldTotalFiles:
		return m.OldTotalFiles(ctx)
	case conversionjob.FieldProcessedFiles:
		return m.OldProcessedFiles(ctx)
	case conversionjob.FieldStatus:
		return m.OldStatus(ctx)
	case conversionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case conversionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case conversionjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case conversionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversionjob.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case conversionjob.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case conversionjob.FieldFileIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileIds(v)
		return nil
	case conversionjob.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFiles(v)
		return nil
	case conversionjob.FieldProcessedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedFiles(v)
		return nil
	case conversionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case conversionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case conversionjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case conversionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversionJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_files != nil {
		fields = append(fields, conversionjob.FieldTotalFiles)
	}
	if m.addprocessed_files != nil {
		fields = append(fields, conversionjob.FieldProcessedFiles)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversionjob.FieldTotalFiles:
		return m.AddedTotalFiles()
	case conversionjob.FieldProcessedFiles:
		return m.AddedProcessedFiles()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversionjob.FieldTotalFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFiles(v)
		return nil
	case conversionjob.FieldProcessedFiles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedFiles(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversionjob.FieldName) {
		fields = append(fields, conversionjob.FieldName)
	}
	if m.FieldCleared(conversionjob.FieldErrorMessage) {
		fields = append(fields, conversionjob.FieldErrorMessage)
	}
	if m.FieldCleared(conversionjob.FieldStartedAt) {
		fields = append(fields, conversionjob.FieldStartedAt)
	}
	if m.FieldCleared(conversionjob.FieldCompletedAt) {
		fields = append(fields, conversionjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversionJobMutation) ClearField(name string) error {
	switch name {
	case conversionjob.FieldName:
		m.ClearName()
		return nil
	case conversionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case conversionjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case conversionjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversionJobMutation) ResetField(name string) error {
	switch name {
	case conversionjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case conversionjob.FieldName:
		m.ResetName()
		return nil
	case conversionjob.FieldFileIds:
		m.ResetFileIds()
		return nil
	case conversionjob.FieldTotalFiles:
		m.ResetTotalFiles()
		return nil
	case conversionjob.FieldProcessedFiles:
		m.ResetProcessedFiles()
		return nil
	case conversionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case conversionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case conversionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case conversionjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case conversionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.records != nil {
		edges = append(edges, conversionjob.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversionjob.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecords != nil {
		edges = append(edges, conversionjob.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversionJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversionjob.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecords {
		edges = append(edges, conversionjob.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case conversionjob.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversionJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversionJobMutation) ResetEdge(name string) error {
	switch name {
	case conversionjob.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob edge %s", name)
}

// ExtractedRecordMutation represents an operation that mutates the ExtractedRecord nodes in the graph.
type ExtractedRecordMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	owner_id                  *uuid.UUID
	product_name              *string
	sku                       *string
	product_code              *string
	jan_code                  *string
	character_name            *string
	brand                     *string
	manufacturer              *string
	supplier_name             *string
	ip_name                   *string
	price                     *float64
	addprice                  *float64
	reference_sales_price     *float64
	addreference_sales_price  *float64
	wholesale_price           *float64
	addwholesale_price        *float64
	order_amount              *float64
	addorder_amount           *float64
	stock                     *int
	addstock                  *int
	wholesale_quantity        *int
	addwholesale_quantity     *int
	release_date              *string
	reservation_release_date  *string
	reservation_deadline      *string
	reservation_shipping_date *string
	dimensions                *string
	single_product_size       *string
	package_size              *string
	inner_box_size            *string
	carton_size               *string
	weight                    *string
	package_type              *string
	protective_film           *string
	quantity_per_pack         *string
	case_pack_quantity        *int
	addcase_pack_quantity     *int
	inner_box_gtin            *string
	outer_box_gtin            *string
	category                  *string
	major_category            *string
	minor_category            *string
	genre_name                *string
	classification            *string
	in_store                  *string
	lot_number                *string
	color                     *string
	material                  *string
	origin                    *string
	country_of_origin         *string
	target_age                *string
	warranty                  *string
	description               *string
	image_urls                *[]string
	appendimage_urls          []string
	raw_text                  *string
	section_text              *string
	confidence_score          *float32
	addconfidence_score       *float32
	status                    *string
	needs_review              *bool
	is_validated              *bool
	is_multi_product          *bool
	total_products_in_file    *int
	addtotal_products_in_file *int
	product_index             *int
	addproduct_index          *int
	error_message             *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	job                       *uuid.UUID
	clearedjob                bool
	file                      *uuid.UUID
	clearedfile               bool
	done                      bool
	oldValue                  func(context.Context) (*ExtractedRecord, error)
	predicates                []predicate.ExtractedRecord
}

var _ ent.Mutation = (*ExtractedRecordMutation)(nil)

// extractedrecordOption allows management of the mutation configuration using functional options.
type extractedrecordOption func(*ExtractedRecordMutation)

// newExtractedRecordMutation creates new mutation for the ExtractedRecord entity.
func newExtractedRecordMutation(c config, op Op, opts ...extractedrecordOption) *ExtractedRecordMutation {
	m := &ExtractedRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedRecordID sets the ID field of the mutation.
func withExtractedRecordID(id uuid.UUID) extractedrecordOption {
	return func(m *ExtractedRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedRecord
		)
		m.oldValue = func(ctx context.Context) (*ExtractedRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedRecord sets the old ExtractedRecord of the mutation.
func withExtractedRecord(node *ExtractedRecord) extractedrecordOption {
	return func(m *ExtractedRecordMutation) {
		m.oldValue = func(context.Context) (*ExtractedRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedRecord entities.
func (m *ExtractedRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ExtractedRecordMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ExtractedRecordMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ExtractedRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetConversionJobID sets the "conversion_job_id" field.
func (m *ExtractedRecordMutation) SetConversionJobID(u uuid.UUID) {
	m.job = &u
}

// ConversionJobID returns the value of the "conversion_job_id" field in the mutation.
func (m *ExtractedRecordMutation) ConversionJobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldConversionJobID returns the old "conversion_job_id" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldConversionJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversionJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversionJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversionJobID: %w", err)
	}
	return oldValue.ConversionJobID, nil
}

// ClearConversionJobID clears the value of the "conversion_job_id" field.
func (m *ExtractedRecordMutation) ClearConversionJobID() {
	m.job = nil
	m.clearedFields[extractedrecord.FieldConversionJobID] = struct{}{}
}

// ConversionJobIDCleared returns if the "conversion_job_id" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ConversionJobIDCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldConversionJobID]
	return ok
}

// ResetConversionJobID resets all changes to the "conversion_job_id" field.
func (m *ExtractedRecordMutation) ResetConversionJobID() {
	m.job = nil
	delete(m.clearedFields, extractedrecord.FieldConversionJobID)
}

// SetSourceFileID sets the "source_file_id" field.
func (m *ExtractedRecordMutation) SetSourceFileID(u uuid.UUID) {
	m.file = &u
}

// SourceFileID returns the value of the "source_file_id" field in the mutation.
func (m *ExtractedRecordMutation) SourceFileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFileID returns the old "source_file_id" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldSourceFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFileID: %w", err)
	}
	return oldValue.SourceFileID, nil
}

// ResetSourceFileID resets all changes to the "source_file_id" field.
func (m *ExtractedRecordMutation) ResetSourceFileID() {
	m.file = nil
}

// SetProductName sets the "product_name" field.
func (m *ExtractedRecordMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *ExtractedRecordMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldProductName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ClearProductName clears the value of the "product_name" field.
func (m *ExtractedRecordMutation) ClearProductName() {
	m.product_name = nil
	m.clearedFields[extractedrecord.FieldProductName] = struct{}{}
}

// ProductNameCleared returns if the "product_name" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ProductNameCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldProductName]
	return ok
}

// ResetProductName resets all changes to the "product_name" field.
func (m *ExtractedRecordMutation) ResetProductName() {
	m.product_name = nil
	delete(m.clearedFields, extractedrecord.FieldProductName)
}

// SetSku sets the "sku" field.
func (m *ExtractedRecordMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *ExtractedRecordMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldSku(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ClearSku clears the value of the "sku" field.
func (m *ExtractedRecordMutation) ClearSku() {
	m.sku = nil
	m.clearedFields[extractedrecord.FieldSku] = struct{}{}
}

// SkuCleared returns if the "sku" field was cleared in this mutation.
func (m *ExtractedRecordMutation) SkuCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldSku]
	return ok
}

// ResetSku resets all changes to the "sku" field.
func (m *ExtractedRecordMutation) ResetSku() {
	m.sku = nil
	delete(m.clearedFields, extractedrecord.FieldSku)
}

// SetProductCode sets the "product_code" field.
func (m *ExtractedRecordMutation) SetProductCode(s string) {
	m.product_code = &s
}

// ProductCode returns the value of the "product_code" field in the mutation.
func (m *ExtractedRecordMutation) ProductCode() (r string, exists bool) {
	v := m.product_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProductCode returns the old "product_code" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldProductCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductCode: %w", err)
	}
	return oldValue.ProductCode, nil
}

// ClearProductCode clears the value of the "product_code" field.
func (m *ExtractedRecordMutation) ClearProductCode() {
	m.product_code = nil
	m.clearedFields[extractedrecord.FieldProductCode] = struct{}{}
}

// ProductCodeCleared returns if the "product_code" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ProductCodeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldProductCode]
	return ok
}

// ResetProductCode resets all changes to the "product_code" field.
func (m *ExtractedRecordMutation) ResetProductCode() {
	m.product_code = nil
	delete(m.clearedFields, extractedrecord.FieldProductCode)
}

// SetJanCode sets the "jan_code" field.
func (m *ExtractedRecordMutation) SetJanCode(s string) {
	m.jan_code = &s
}

// JanCode returns the value of the "jan_code" field in the mutation.
func (m *ExtractedRecordMutation) JanCode() (r string, exists bool) {
	v := m.jan_code
	if v == nil {
		return
	}
	return *v, true
}

// OldJanCode returns the old "jan_code" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldJanCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJanCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJanCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJanCode: %w", err)
	}
	return oldValue.JanCode, nil
}

// ClearJanCode clears the value of the "jan_code" field.
func (m *ExtractedRecordMutation) ClearJanCode() {
	m.jan_code = nil
	m.clearedFields[extractedrecord.FieldJanCode] = struct{}{}
}

// JanCodeCleared returns if the "jan_code" field was cleared in this mutation.
func (m *ExtractedRecordMutation) JanCodeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldJanCode]
	return ok
}

// ResetJanCode resets all changes to the "jan_code" field.
func (m *ExtractedRecordMutation) ResetJanCode() {
	m.jan_code = nil
	delete(m.clearedFields, extractedrecord.FieldJanCode)
}

// SetCharacterName sets the "character_name" field.
func (m *ExtractedRecordMutation) SetCharacterName(s string) {
	m.character_name = &s
}

// CharacterName returns the value of the "character_name" field in the mutation.
func (m *ExtractedRecordMutation) CharacterName() (r string, exists bool) {
	v := m.character_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacterName returns the old "character_name" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCharacterName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacterName: %w", err)
	}
	return oldValue.CharacterName, nil
}

// ClearCharacterName clears the value of the "character_name" field.
func (m *ExtractedRecordMutation) ClearCharacterName() {
	m.character_name = nil
	m.clearedFields[extractedrecord.FieldCharacterName] = struct{}{}
}

// CharacterNameCleared returns if the "character_name" field was cleared in this mutation.
func (m *ExtractedRecordMutation) CharacterNameCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldCharacterName]
	return ok
}

// ResetCharacterName resets all changes to the "character_name" field.
func (m *ExtractedRecordMutation) ResetCharacterName() {
	m.character_name = nil
	delete(m.clearedFields, extractedrecord.FieldCharacterName)
}

// SetBrand sets the "brand" field.
func (m *ExtractedRecordMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *ExtractedRecordMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldBrand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ClearBrand clears the value of the "brand" field.
func (m *ExtractedRecordMutation) ClearBrand() {
	m.brand = nil
	m.clearedFields[extractedrecord.FieldBrand] = struct{}{}
}

// BrandCleared returns if the "brand" field was cleared in this mutation.
func (m *ExtractedRecordMutation) BrandCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldBrand]
	return ok
}

// ResetBrand resets all changes to the "brand" field.
func (m *ExtractedRecordMutation) ResetBrand() {
	m.brand = nil
	delete(m.clearedFields, extractedrecord.FieldBrand)
}

// SetManufacturer sets the "manufacturer" field.
func (m *ExtractedRecordMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *ExtractedRecordMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldManufacturer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *ExtractedRecordMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[extractedrecord.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *ExtractedRecordMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, extractedrecord.FieldManufacturer)
}

// SetSupplierName sets the "supplier_name" field.
func (m *ExtractedRecordMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *ExtractedRecordMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldSupplierName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *ExtractedRecordMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[extractedrecord.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *ExtractedRecordMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *ExtractedRecordMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, extractedrecord.FieldSupplierName)
}

// SetIPName sets the "ip_name" field.
func (m *ExtractedRecordMutation) SetIPName(s string) {
	m.ip_name = &s
}

// IPName returns the value of the "ip_name" field in the mutation.
func (m *ExtractedRecordMutation) IPName() (r string, exists bool) {
	v := m.ip_name
	if v == nil {
		return
	}
	return *v, true
}

// OldIPName returns the old "ip_name" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldIPName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPName: %w", err)
	}
	return oldValue.IPName, nil
}

// ClearIPName clears the value of the "ip_name" field.
func (m *ExtractedRecordMutation) ClearIPName() {
	m.ip_name = nil
	m.clearedFields[extractedrecord.FieldIPName] = struct{}{}
}

// IPNameCleared returns if the "ip_name" field was cleared in this mutation.
func (m *ExtractedRecordMutation) IPNameCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldIPName]
	return ok
}

// ResetIPName resets all changes to the "ip_name" field.
func (m *ExtractedRecordMutation) ResetIPName() {
	m.ip_name = nil
	delete(m.clearedFields, extractedrecord.FieldIPName)
}

// SetPrice sets the "price" field.
func (m *ExtractedRecordMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ExtractedRecordMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ExtractedRecordMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ExtractedRecordMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *ExtractedRecordMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[extractedrecord.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *ExtractedRecordMutation) PriceCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *ExtractedRecordMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, extractedrecord.FieldPrice)
}

// SetReferenceSalesPrice sets the "reference_sales_price" field.
func (m *ExtractedRecordMutation) SetReferenceSalesPrice(f float64) {
	m.reference_sales_price = &f
	m.addreference_sales_price = nil
}

// ReferenceSalesPrice returns the value of the "reference_sales_price" field in the mutation.
func (m *ExtractedRecordMutation) ReferenceSalesPrice() (r float64, exists bool) {
	v := m.reference_sales_price
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceSalesPrice returns the old "reference_sales_price" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldReferenceSalesPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceSalesPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceSalesPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceSalesPrice: %w", err)
	}
	return oldValue.ReferenceSalesPrice, nil
}

// AddReferenceSalesPrice adds f to the "reference_sales_price" field.
func (m *ExtractedRecordMutation) AddReferenceSalesPrice(f float64) {
	if m.addreference_sales_price != nil {
		*m.addreference_sales_price += f
	} else {
		m.addreference_sales_price = &f
	}
}

// AddedReferenceSalesPrice returns the value that was added to the "reference_sales_price" field in this mutation.
func (m *ExtractedRecordMutation) AddedReferenceSalesPrice() (r float64, exists bool) {
	v := m.addreference_sales_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferenceSalesPrice clears the value of the "reference_sales_price" field.
func (m *ExtractedRecordMutation) ClearReferenceSalesPrice() {
	m.reference_sales_price = nil
	m.addreference_sales_price = nil
	m.clearedFields[extractedrecord.FieldReferenceSalesPrice] = struct{}{}
}

// ReferenceSalesPriceCleared returns if the "reference_sales_price" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ReferenceSalesPriceCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldReferenceSalesPrice]
	return ok
}

// ResetReferenceSalesPrice resets all changes to the "reference_sales_price" field.
func (m *ExtractedRecordMutation) ResetReferenceSalesPrice() {
	m.reference_sales_price = nil
	m.addreference_sales_price = nil
	delete(m.clearedFields, extractedrecord.FieldReferenceSalesPrice)
}

// SetWholesalePrice sets the "wholesale_price" field.
func (m *ExtractedRecordMutation) SetWholesalePrice(f float64) {
	m.wholesale_price = &f
	m.addwholesale_price = nil
}

// WholesalePrice returns the value of the "wholesale_price" field in the mutation.
func (m *ExtractedRecordMutation) WholesalePrice() (r float64, exists bool) {
	v := m.wholesale_price
	if v == nil {
		return
	}
	return *v, true
}

// OldWholesalePrice returns the old "wholesale_price" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldWholesalePrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWholesalePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWholesalePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWholesalePrice: %w", err)
	}
	return oldValue.WholesalePrice, nil
}

// AddWholesalePrice adds f to the "wholesale_price" field.
func (m *ExtractedRecordMutation) AddWholesalePrice(f float64) {
	if m.addwholesale_price != nil {
		*m.addwholesale_price += f
	} else {
		m.addwholesale_price = &f
	}
}

// AddedWholesalePrice returns the value that was added to the "wholesale_price" field in this mutation.
func (m *ExtractedRecordMutation) AddedWholesalePrice() (r float64, exists bool) {
	v := m.addwholesale_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearWholesalePrice clears the value of the "wholesale_price" field.
func (m *ExtractedRecordMutation) ClearWholesalePrice() {
	m.wholesale_price = nil
	m.addwholesale_price = nil
	m.clearedFields[extractedrecord.FieldWholesalePrice] = struct{}{}
}

// WholesalePriceCleared returns if the "wholesale_price" field was cleared in this mutation.
func (m *ExtractedRecordMutation) WholesalePriceCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldWholesalePrice]
	return ok
}

// ResetWholesalePrice resets all changes to the "wholesale_price" field.
func (m *ExtractedRecordMutation) ResetWholesalePrice() {
	m.wholesale_price = nil
	m.addwholesale_price = nil
	delete(m.clearedFields, extractedrecord.FieldWholesalePrice)
}

// SetOrderAmount sets the "order_amount" field.
func (m *ExtractedRecordMutation) SetOrderAmount(f float64) {
	m.order_amount = &f
	m.addorder_amount = nil
}

// OrderAmount returns the value of the "order_amount" field in the mutation.
func (m *ExtractedRecordMutation) OrderAmount() (r float64, exists bool) {
	v := m.order_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderAmount returns the old "order_amount" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldOrderAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderAmount: %w", err)
	}
	return oldValue.OrderAmount, nil
}

// AddOrderAmount adds f to the "order_amount" field.
func (m *ExtractedRecordMutation) AddOrderAmount(f float64) {
	if m.addorder_amount != nil {
		*m.addorder_amount += f
	} else {
		m.addorder_amount = &f
	}
}

// AddedOrderAmount returns the value that was added to the "order_amount" field in this mutation.
func (m *ExtractedRecordMutation) AddedOrderAmount() (r float64, exists bool) {
	v := m.addorder_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearOrderAmount clears the value of the "order_amount" field.
func (m *ExtractedRecordMutation) ClearOrderAmount() {
	m.order_amount = nil
	m.addorder_amount = nil
	m.clearedFields[extractedrecord.FieldOrderAmount] = struct{}{}
}

// OrderAmountCleared returns if the "order_amount" field was cleared in this mutation.
func (m *ExtractedRecordMutation) OrderAmountCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldOrderAmount]
	return ok
}

// ResetOrderAmount resets all changes to the "order_amount" field.
func (m *ExtractedRecordMutation) ResetOrderAmount() {
	m.order_amount = nil
	m.addorder_amount = nil
	delete(m.clearedFields, extractedrecord.FieldOrderAmount)
}

// SetStock sets the "stock" field.
func (m *ExtractedRecordMutation) SetStock(i int) {
	m.stock = &i
	m.addstock = nil
}

// Stock returns the value of the "stock" field in the mutation.
func (m *ExtractedRecordMutation) Stock() (r int, exists bool) {
	v := m.stock
	if v == nil {
		return
	}
	return *v, true
}

// OldStock returns the old "stock" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldStock(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStock: %w", err)
	}
	return oldValue.Stock, nil
}

// AddStock adds i to the "stock" field.
func (m *ExtractedRecordMutation) AddStock(i int) {
	if m.addstock != nil {
		*m.addstock += i
	} else {
		m.addstock = &i
	}
}

// AddedStock returns the value that was added to the "stock" field in this mutation.
func (m *ExtractedRecordMutation) AddedStock() (r int, exists bool) {
	v := m.addstock
	if v == nil {
		return
	}
	return *v, true
}

// ClearStock clears the value of the "stock" field.
func (m *ExtractedRecordMutation) ClearStock() {
	m.stock = nil
	m.addstock = nil
	m.clearedFields[extractedrecord.FieldStock] = struct{}{}
}

// StockCleared returns if the "stock" field was cleared in this mutation.
func (m *ExtractedRecordMutation) StockCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldStock]
	return ok
}

// ResetStock resets all changes to the "stock" field.
func (m *ExtractedRecordMutation) ResetStock() {
	m.stock = nil
	m.addstock = nil
	delete(m.clearedFields, extractedrecord.FieldStock)
}

// SetWholesaleQuantity sets the "wholesale_quantity" field.
func (m *ExtractedRecordMutation) SetWholesaleQuantity(i int) {
	m.wholesale_quantity = &i
	m.addwholesale_quantity = nil
}

// WholesaleQuantity returns the value of the "wholesale_quantity" field in the mutation.
func (m *ExtractedRecordMutation) WholesaleQuantity() (r int, exists bool) {
	v := m.wholesale_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldWholesaleQuantity returns the old "wholesale_quantity" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldWholesaleQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWholesaleQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWholesaleQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWholesaleQuantity: %w", err)
	}
	return oldValue.WholesaleQuantity, nil
}

// AddWholesaleQuantity adds i to the "wholesale_quantity" field.
func (m *ExtractedRecordMutation) AddWholesaleQuantity(i int) {
	if m.addwholesale_quantity != nil {
		*m.addwholesale_quantity += i
	} else {
		m.addwholesale_quantity = &i
	}
}

// AddedWholesaleQuantity returns the value that was added to the "wholesale_quantity" field in this mutation.
func (m *ExtractedRecordMutation) AddedWholesaleQuantity() (r int, exists bool) {
	v := m.addwholesale_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearWholesaleQuantity clears the value of the "wholesale_quantity" field.
func (m *ExtractedRecordMutation) ClearWholesaleQuantity() {
	m.wholesale_quantity = nil
	m.addwholesale_quantity = nil
	m.clearedFields[extractedrecord.FieldWholesaleQuantity] = struct{}{}
}

// WholesaleQuantityCleared returns if the "wholesale_quantity" field was cleared in this mutation.
func (m *ExtractedRecordMutation) WholesaleQuantityCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldWholesaleQuantity]
	return ok
}

// ResetWholesaleQuantity resets all changes to the "wholesale_quantity" field.
func (m *ExtractedRecordMutation) ResetWholesaleQuantity() {
	m.wholesale_quantity = nil
	m.addwholesale_quantity = nil
	delete(m.clearedFields, extractedrecord.FieldWholesaleQuantity)
}

// SetReleaseDate sets the "release_date" field.
func (m *ExtractedRecordMutation) SetReleaseDate(s string) {
	m.release_date = &s
}

// ReleaseDate returns the value of the "release_date" field in the mutation.
func (m *ExtractedRecordMutation) ReleaseDate() (r string, exists bool) {
	v := m.release_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReleaseDate returns the old "release_date" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldReleaseDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleaseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleaseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleaseDate: %w", err)
	}
	return oldValue.ReleaseDate, nil
}

// ClearReleaseDate clears the value of the "release_date" field.
func (m *ExtractedRecordMutation) ClearReleaseDate() {
	m.release_date = nil
	m.clearedFields[extractedrecord.FieldReleaseDate] = struct{}{}
}

// ReleaseDateCleared returns if the "release_date" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ReleaseDateCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldReleaseDate]
	return ok
}

// ResetReleaseDate resets all changes to the "release_date" field.
func (m *ExtractedRecordMutation) ResetReleaseDate() {
	m.release_date = nil
	delete(m.clearedFields, extractedrecord.FieldReleaseDate)
}

// SetReservationReleaseDate sets the "reservation_release_date" field.
func (m *ExtractedRecordMutation) SetReservationReleaseDate(s string) {
	m.reservation_release_date = &s
}

// ReservationReleaseDate returns the value of the "reservation_release_date" field in the mutation.
func (m *ExtractedRecordMutation) ReservationReleaseDate() (r string, exists bool) {
	v := m.reservation_release_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationReleaseDate returns the old "reservation_release_date" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldReservationReleaseDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationReleaseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationReleaseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationReleaseDate: %w", err)
	}
	return oldValue.ReservationReleaseDate, nil
}

// ClearReservationReleaseDate clears the value of the "reservation_release_date" field.
func (m *ExtractedRecordMutation) ClearReservationReleaseDate() {
	m.reservation_release_date = nil
	m.clearedFields[extractedrecord.FieldReservationReleaseDate] = struct{}{}
}

// ReservationReleaseDateCleared returns if the "reservation_release_date" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ReservationReleaseDateCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldReservationReleaseDate]
	return ok
}

// ResetReservationReleaseDate resets all changes to the "reservation_release_date" field.
func (m *ExtractedRecordMutation) ResetReservationReleaseDate() {
	m.reservation_release_date = nil
	delete(m.clearedFields, extractedrecord.FieldReservationReleaseDate)
}

// SetReservationDeadline sets the "reservation_deadline" field.
func (m *ExtractedRecordMutation) SetReservationDeadline(s string) {
	m.reservation_deadline = &s
}

// ReservationDeadline returns the value of the "reservation_deadline" field in the mutation.
func (m *ExtractedRecordMutation) ReservationDeadline() (r string, exists bool) {
	v := m.reservation_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationDeadline returns the old "reservation_deadline" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldReservationDeadline(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationDeadline: %w", err)
	}
	return oldValue.ReservationDeadline, nil
}

// ClearReservationDeadline clears the value of the "reservation_deadline" field.
func (m *ExtractedRecordMutation) ClearReservationDeadline() {
	m.reservation_deadline = nil
	m.clearedFields[extractedrecord.FieldReservationDeadline] = struct{}{}
}

// ReservationDeadlineCleared returns if the "reservation_deadline" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ReservationDeadlineCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldReservationDeadline]
	return ok
}

// ResetReservationDeadline resets all changes to the "reservation_deadline" field.
func (m *ExtractedRecordMutation) ResetReservationDeadline() {
	m.reservation_deadline = nil
	delete(m.clearedFields, extractedrecord.FieldReservationDeadline)
}

// SetReservationShippingDate sets the "reservation_shipping_date" field.
func (m *ExtractedRecordMutation) SetReservationShippingDate(s string) {
	m.reservation_shipping_date = &s
}

// ReservationShippingDate returns the value of the "reservation_shipping_date" field in the mutation.
func (m *ExtractedRecordMutation) ReservationShippingDate() (r string, exists bool) {
	v := m.reservation_shipping_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationShippingDate returns the old "reservation_shipping_date" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldReservationShippingDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationShippingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationShippingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationShippingDate: %w", err)
	}
	return oldValue.ReservationShippingDate, nil
}

// ClearReservationShippingDate clears the value of the "reservation_shipping_date" field.
func (m *ExtractedRecordMutation) ClearReservationShippingDate() {
	m.reservation_shipping_date = nil
	m.clearedFields[extractedrecord.FieldReservationShippingDate] = struct{}{}
}

// ReservationShippingDateCleared returns if the "reservation_shipping_date" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ReservationShippingDateCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldReservationShippingDate]
	return ok
}

// ResetReservationShippingDate resets all changes to the "reservation_shipping_date" field.
func (m *ExtractedRecordMutation) ResetReservationShippingDate() {
	m.reservation_shipping_date = nil
	delete(m.clearedFields, extractedrecord.FieldReservationShippingDate)
}

// SetDimensions sets the "dimensions" field.
func (m *ExtractedRecordMutation) SetDimensions(s string) {
	m.dimensions = &s
}

// Dimensions returns the value of the "dimensions" field in the mutation.
func (m *ExtractedRecordMutation) Dimensions() (r string, exists bool) {
	v := m.dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensions returns the old "dimensions" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldDimensions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensions: %w", err)
	}
	return oldValue.Dimensions, nil
}

// ClearDimensions clears the value of the "dimensions" field.
func (m *ExtractedRecordMutation) ClearDimensions() {
	m.dimensions = nil
	m.clearedFields[extractedrecord.FieldDimensions] = struct{}{}
}

// DimensionsCleared returns if the "dimensions" field was cleared in this mutation.
func (m *ExtractedRecordMutation) DimensionsCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldDimensions]
	return ok
}

// ResetDimensions resets all changes to the "dimensions" field.
func (m *ExtractedRecordMutation) ResetDimensions() {
	m.dimensions = nil
	delete(m.clearedFields, extractedrecord.FieldDimensions)
}

// SetSingleProductSize sets the "single_product_size" field.
func (m *ExtractedRecordMutation) SetSingleProductSize(s string) {
	m.single_product_size = &s
}

// SingleProductSize returns the value of the "single_product_size" field in the mutation.
func (m *ExtractedRecordMutation) SingleProductSize() (r string, exists bool) {
	v := m.single_product_size
	if v == nil {
		return
	}
	return *v, true
}

// OldSingleProductSize returns the old "single_product_size" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldSingleProductSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingleProductSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingleProductSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingleProductSize: %w", err)
	}
	return oldValue.SingleProductSize, nil
}

// ClearSingleProductSize clears the value of the "single_product_size" field.
func (m *ExtractedRecordMutation) ClearSingleProductSize() {
	m.single_product_size = nil
	m.clearedFields[extractedrecord.FieldSingleProductSize] = struct{}{}
}

// SingleProductSizeCleared returns if the "single_product_size" field was cleared in this mutation.
func (m *ExtractedRecordMutation) SingleProductSizeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldSingleProductSize]
	return ok
}

// ResetSingleProductSize resets all changes to the "single_product_size" field.
func (m *ExtractedRecordMutation) ResetSingleProductSize() {
	m.single_product_size = nil
	delete(m.clearedFields, extractedrecord.FieldSingleProductSize)
}

// SetPackageSize sets the "package_size" field.
func (m *ExtractedRecordMutation) SetPackageSize(s string) {
	m.package_size = &s
}

// PackageSize returns the value of the "package_size" field in the mutation.
func (m *ExtractedRecordMutation) PackageSize() (r string, exists bool) {
	v := m.package_size
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageSize returns the old "package_size" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldPackageSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageSize: %w", err)
	}
	return oldValue.PackageSize, nil
}

// ClearPackageSize clears the value of the "package_size" field.
func (m *ExtractedRecordMutation) ClearPackageSize() {
	m.package_size = nil
	m.clearedFields[extractedrecord.FieldPackageSize] = struct{}{}
}

// PackageSizeCleared returns if the "package_size" field was cleared in this mutation.
func (m *ExtractedRecordMutation) PackageSizeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldPackageSize]
	return ok
}

// ResetPackageSize resets all changes to the "package_size" field.
func (m *ExtractedRecordMutation) ResetPackageSize() {
	m.package_size = nil
	delete(m.clearedFields, extractedrecord.FieldPackageSize)
}

// SetInnerBoxSize sets the "inner_box_size" field.
func (m *ExtractedRecordMutation) SetInnerBoxSize(s string) {
	m.inner_box_size = &s
}

// InnerBoxSize returns the value of the "inner_box_size" field in the mutation.
func (m *ExtractedRecordMutation) InnerBoxSize() (r string, exists bool) {
	v := m.inner_box_size
	if v == nil {
		return
	}
	return *v, true
}

// OldInnerBoxSize returns the old "inner_box_size" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldInnerBoxSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInnerBoxSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInnerBoxSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInnerBoxSize: %w", err)
	}
	return oldValue.InnerBoxSize, nil
}

// ClearInnerBoxSize clears the value of the "inner_box_size" field.
func (m *ExtractedRecordMutation) ClearInnerBoxSize() {
	m.inner_box_size = nil
	m.clearedFields[extractedrecord.FieldInnerBoxSize] = struct{}{}
}

// InnerBoxSizeCleared returns if the "inner_box_size" field was cleared in this mutation.
func (m *ExtractedRecordMutation) InnerBoxSizeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldInnerBoxSize]
	return ok
}

// ResetInnerBoxSize resets all changes to the "inner_box_size" field.
func (m *ExtractedRecordMutation) ResetInnerBoxSize() {
	m.inner_box_size = nil
	delete(m.clearedFields, extractedrecord.FieldInnerBoxSize)
}

// SetCartonSize sets the "carton_size" field.
func (m *ExtractedRecordMutation) SetCartonSize(s string) {
	m.carton_size = &s
}

// CartonSize returns the value of the "carton_size" field in the mutation.
func (m *ExtractedRecordMutation) CartonSize() (r string, exists bool) {
	v := m.carton_size
	if v == nil {
		return
	}
	return *v, true
}

// OldCartonSize returns the old "carton_size" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCartonSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCartonSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCartonSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCartonSize: %w", err)
	}
	return oldValue.CartonSize, nil
}

// ClearCartonSize clears the value of the "carton_size" field.
func (m *ExtractedRecordMutation) ClearCartonSize() {
	m.carton_size = nil
	m.clearedFields[extractedrecord.FieldCartonSize] = struct{}{}
}

// CartonSizeCleared returns if the "carton_size" field was cleared in this mutation.
func (m *ExtractedRecordMutation) CartonSizeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldCartonSize]
	return ok
}

// ResetCartonSize resets all changes to the "carton_size" field.
func (m *ExtractedRecordMutation) ResetCartonSize() {
	m.carton_size = nil
	delete(m.clearedFields, extractedrecord.FieldCartonSize)
}

// SetWeight sets the "weight" field.
func (m *ExtractedRecordMutation) SetWeight(s string) {
	m.weight = &s
}

// Weight returns the value of the "weight" field in the mutation.
func (m *ExtractedRecordMutation) Weight() (r string, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldWeight(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// ClearWeight clears the value of the "weight" field.
func (m *ExtractedRecordMutation) ClearWeight() {
	m.weight = nil
	m.clearedFields[extractedrecord.FieldWeight] = struct{}{}
}

// WeightCleared returns if the "weight" field was cleared in this mutation.
func (m *ExtractedRecordMutation) WeightCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldWeight]
	return ok
}

// ResetWeight resets all changes to the "weight" field.
func (m *ExtractedRecordMutation) ResetWeight() {
	m.weight = nil
	delete(m.clearedFields, extractedrecord.FieldWeight)
}

// SetPackageType sets the "package_type" field.
func (m *ExtractedRecordMutation) SetPackageType(s string) {
	m.package_type = &s
}

// PackageType returns the value of the "package_type" field in the mutation.
func (m *ExtractedRecordMutation) PackageType() (r string, exists bool) {
	v := m.package_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageType returns the old "package_type" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldPackageType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageType: %w", err)
	}
	return oldValue.PackageType, nil
}

// ClearPackageType clears the value of the "package_type" field.
func (m *ExtractedRecordMutation) ClearPackageType() {
	m.package_type = nil
	m.clearedFields[extractedrecord.FieldPackageType] = struct{}{}
}

// PackageTypeCleared returns if the "package_type" field was cleared in this mutation.
func (m *ExtractedRecordMutation) PackageTypeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldPackageType]
	return ok
}

// ResetPackageType resets all changes to the "package_type" field.
func (m *ExtractedRecordMutation) ResetPackageType() {
	m.package_type = nil
	delete(m.clearedFields, extractedrecord.FieldPackageType)
}

// SetProtectiveFilm sets the "protective_film" field.
func (m *ExtractedRecordMutation) SetProtectiveFilm(s string) {
	m.protective_film = &s
}

// ProtectiveFilm returns the value of the "protective_film" field in the mutation.
func (m *ExtractedRecordMutation) ProtectiveFilm() (r string, exists bool) {
	v := m.protective_film
	if v == nil {
		return
	}
	return *v, true
}

// OldProtectiveFilm returns the old "protective_film" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldProtectiveFilm(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtectiveFilm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtectiveFilm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtectiveFilm: %w", err)
	}
	return oldValue.ProtectiveFilm, nil
}

// ClearProtectiveFilm clears the value of the "protective_film" field.
func (m *ExtractedRecordMutation) ClearProtectiveFilm() {
	m.protective_film = nil
	m.clearedFields[extractedrecord.FieldProtectiveFilm] = struct{}{}
}

// ProtectiveFilmCleared returns if the "protective_film" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ProtectiveFilmCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldProtectiveFilm]
	return ok
}

// ResetProtectiveFilm resets all changes to the "protective_film" field.
func (m *ExtractedRecordMutation) ResetProtectiveFilm() {
	m.protective_film = nil
	delete(m.clearedFields, extractedrecord.FieldProtectiveFilm)
}

// SetQuantityPerPack sets the "quantity_per_pack" field.
func (m *ExtractedRecordMutation) SetQuantityPerPack(s string) {
	m.quantity_per_pack = &s
}

// QuantityPerPack returns the value of the "quantity_per_pack" field in the mutation.
func (m *ExtractedRecordMutation) QuantityPerPack() (r string, exists bool) {
	v := m.quantity_per_pack
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantityPerPack returns the old "quantity_per_pack" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldQuantityPerPack(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantityPerPack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantityPerPack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantityPerPack: %w", err)
	}
	return oldValue.QuantityPerPack, nil
}

// ClearQuantityPerPack clears the value of the "quantity_per_pack" field.
func (m *ExtractedRecordMutation) ClearQuantityPerPack() {
	m.quantity_per_pack = nil
	m.clearedFields[extractedrecord.FieldQuantityPerPack] = struct{}{}
}

// QuantityPerPackCleared returns if the "quantity_per_pack" field was cleared in this mutation.
func (m *ExtractedRecordMutation) QuantityPerPackCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldQuantityPerPack]
	return ok
}

// ResetQuantityPerPack resets all changes to the "quantity_per_pack" field.
func (m *ExtractedRecordMutation) ResetQuantityPerPack() {
	m.quantity_per_pack = nil
	delete(m.clearedFields, extractedrecord.FieldQuantityPerPack)
}

// SetCasePackQuantity sets the "case_pack_quantity" field.
func (m *ExtractedRecordMutation) SetCasePackQuantity(i int) {
	m.case_pack_quantity = &i
	m.addcase_pack_quantity = nil
}

// CasePackQuantity returns the value of the "case_pack_quantity" field in the mutation.
func (m *ExtractedRecordMutation) CasePackQuantity() (r int, exists bool) {
	v := m.case_pack_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldCasePackQuantity returns the old "case_pack_quantity" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCasePackQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCasePackQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCasePackQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCasePackQuantity: %w", err)
	}
	return oldValue.CasePackQuantity, nil
}

// AddCasePackQuantity adds i to the "case_pack_quantity" field.
func (m *ExtractedRecordMutation) AddCasePackQuantity(i int) {
	if m.addcase_pack_quantity != nil {
		*m.addcase_pack_quantity += i
	} else {
		m.addcase_pack_quantity = &i
	}
}

// AddedCasePackQuantity returns the value that was added to the "case_pack_quantity" field in this mutation.
func (m *ExtractedRecordMutation) AddedCasePackQuantity() (r int, exists bool) {
	v := m.addcase_pack_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearCasePackQuantity clears the value of the "case_pack_quantity" field.
func (m *ExtractedRecordMutation) ClearCasePackQuantity() {
	m.case_pack_quantity = nil
	m.addcase_pack_quantity = nil
	m.clearedFields[extractedrecord.FieldCasePackQuantity] = struct{}{}
}

// CasePackQuantityCleared returns if the "case_pack_quantity" field was cleared in this mutation.
func (m *ExtractedRecordMutation) CasePackQuantityCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldCasePackQuantity]
	return ok
}

// ResetCasePackQuantity resets all changes to the "case_pack_quantity" field.
func (m *ExtractedRecordMutation) ResetCasePackQuantity() {
	m.case_pack_quantity = nil
	m.addcase_pack_quantity = nil
	delete(m.clearedFields, extractedrecord.FieldCasePackQuantity)
}

// SetInnerBoxGtin sets the "inner_box_gtin" field.
func (m *ExtractedRecordMutation) SetInnerBoxGtin(s string) {
	m.inner_box_gtin = &s
}

// InnerBoxGtin returns the value of the "inner_box_gtin" field in the mutation.
func (m *ExtractedRecordMutation) InnerBoxGtin() (r string, exists bool) {
	v := m.inner_box_gtin
	if v == nil {
		return
	}
	return *v, true
}

// OldInnerBoxGtin returns the old "inner_box_gtin" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldInnerBoxGtin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInnerBoxGtin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInnerBoxGtin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInnerBoxGtin: %w", err)
	}
	return oldValue.InnerBoxGtin, nil
}

// ClearInnerBoxGtin clears the value of the "inner_box_gtin" field.
func (m *ExtractedRecordMutation) ClearInnerBoxGtin() {
	m.inner_box_gtin = nil
	m.clearedFields[extractedrecord.FieldInnerBoxGtin] = struct{}{}
}

// InnerBoxGtinCleared returns if the "inner_box_gtin" field was cleared in this mutation.
func (m *ExtractedRecordMutation) InnerBoxGtinCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldInnerBoxGtin]
	return ok
}

// ResetInnerBoxGtin resets all changes to the "inner_box_gtin" field.
func (m *ExtractedRecordMutation) ResetInnerBoxGtin() {
	m.inner_box_gtin = nil
	delete(m.clearedFields, extractedrecord.FieldInnerBoxGtin)
}

// SetOuterBoxGtin sets the "outer_box_gtin" field.
func (m *ExtractedRecordMutation) SetOuterBoxGtin(s string) {
	m.outer_box_gtin = &s
}

// OuterBoxGtin returns the value of the "outer_box_gtin" field in the mutation.
func (m *ExtractedRecordMutation) OuterBoxGtin() (r string, exists bool) {
	v := m.outer_box_gtin
	if v == nil {
		return
	}
	return *v, true
}

// OldOuterBoxGtin returns the old "outer_box_gtin" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldOuterBoxGtin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOuterBoxGtin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOuterBoxGtin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOuterBoxGtin: %w", err)
	}
	return oldValue.OuterBoxGtin, nil
}

// ClearOuterBoxGtin clears the value of the "outer_box_gtin" field.
func (m *ExtractedRecordMutation) ClearOuterBoxGtin() {
	m.outer_box_gtin = nil
	m.clearedFields[extractedrecord.FieldOuterBoxGtin] = struct{}{}
}

// OuterBoxGtinCleared returns if the "outer_box_gtin" field was cleared in this mutation.
func (m *ExtractedRecordMutation) OuterBoxGtinCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldOuterBoxGtin]
	return ok
}

// ResetOuterBoxGtin resets all changes to the "outer_box_gtin" field.
func (m *ExtractedRecordMutation) ResetOuterBoxGtin() {
	m.outer_box_gtin = nil
	delete(m.clearedFields, extractedrecord.FieldOuterBoxGtin)
}

// SetCategory sets the "category" field.
func (m *ExtractedRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractedRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ExtractedRecordMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[extractedrecord.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ExtractedRecordMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractedRecordMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, extractedrecord.FieldCategory)
}

// SetMajorCategory sets the "major_category" field.
func (m *ExtractedRecordMutation) SetMajorCategory(s string) {
	m.major_category = &s
}

// MajorCategory returns the value of the "major_category" field in the mutation.
func (m *ExtractedRecordMutation) MajorCategory() (r string, exists bool) {
	v := m.major_category
	if v == nil {
		return
	}
	return *v, true
}

// OldMajorCategory returns the old "major_category" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldMajorCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajorCategory: %w", err)
	}
	return oldValue.MajorCategory, nil
}

// ClearMajorCategory clears the value of the "major_category" field.
func (m *ExtractedRecordMutation) ClearMajorCategory() {
	m.major_category = nil
	m.clearedFields[extractedrecord.FieldMajorCategory] = struct{}{}
}

// MajorCategoryCleared returns if the "major_category" field was cleared in this mutation.
func (m *ExtractedRecordMutation) MajorCategoryCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldMajorCategory]
	return ok
}

// ResetMajorCategory resets all changes to the "major_category" field.
func (m *ExtractedRecordMutation) ResetMajorCategory() {
	m.major_category = nil
	delete(m.clearedFields, extractedrecord.FieldMajorCategory)
}

// SetMinorCategory sets the "minor_category" field.
func (m *ExtractedRecordMutation) SetMinorCategory(s string) {
	m.minor_category = &s
}

// MinorCategory returns the value of the "minor_category" field in the mutation.
func (m *ExtractedRecordMutation) MinorCategory() (r string, exists bool) {
	v := m.minor_category
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorCategory returns the old "minor_category" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldMinorCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorCategory: %w", err)
	}
	return oldValue.MinorCategory, nil
}

// ClearMinorCategory clears the value of the "minor_category" field.
func (m *ExtractedRecordMutation) ClearMinorCategory() {
	m.minor_category = nil
	m.clearedFields[extractedrecord.FieldMinorCategory] = struct{}{}
}

// MinorCategoryCleared returns if the "minor_category" field was cleared in this mutation.
func (m *ExtractedRecordMutation) MinorCategoryCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldMinorCategory]
	return ok
}

// ResetMinorCategory resets all changes to the "minor_category" field.
func (m *ExtractedRecordMutation) ResetMinorCategory() {
	m.minor_category = nil
	delete(m.clearedFields, extractedrecord.FieldMinorCategory)
}

// SetGenreName sets the "genre_name" field.
func (m *ExtractedRecordMutation) SetGenreName(s string) {
	m.genre_name = &s
}

// GenreName returns the value of the "genre_name" field in the mutation.
func (m *ExtractedRecordMutation) GenreName() (r string, exists bool) {
	v := m.genre_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGenreName returns the old "genre_name" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldGenreName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenreName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenreName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenreName: %w", err)
	}
	return oldValue.GenreName, nil
}

// ClearGenreName clears the value of the "genre_name" field.
func (m *ExtractedRecordMutation) ClearGenreName() {
	m.genre_name = nil
	m.clearedFields[extractedrecord.FieldGenreName] = struct{}{}
}

// GenreNameCleared returns if the "genre_name" field was cleared in this mutation.
func (m *ExtractedRecordMutation) GenreNameCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldGenreName]
	return ok
}

// ResetGenreName resets all changes to the "genre_name" field.
func (m *ExtractedRecordMutation) ResetGenreName() {
	m.genre_name = nil
	delete(m.clearedFields, extractedrecord.FieldGenreName)
}

// SetClassification sets the "classification" field.
func (m *ExtractedRecordMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *ExtractedRecordMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldClassification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *ExtractedRecordMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[extractedrecord.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *ExtractedRecordMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, extractedrecord.FieldClassification)
}

// SetInStore sets the "in_store" field.
func (m *ExtractedRecordMutation) SetInStore(s string) {
	m.in_store = &s
}

// InStore returns the value of the "in_store" field in the mutation.
func (m *ExtractedRecordMutation) InStore() (r string, exists bool) {
	v := m.in_store
	if v == nil {
		return
	}
	return *v, true
}

// OldInStore returns the old "in_store" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldInStore(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInStore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInStore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInStore: %w", err)
	}
	return oldValue.InStore, nil
}

// ClearInStore clears the value of the "in_store" field.
func (m *ExtractedRecordMutation) ClearInStore() {
	m.in_store = nil
	m.clearedFields[extractedrecord.FieldInStore] = struct{}{}
}

// InStoreCleared returns if the "in_store" field was cleared in this mutation.
func (m *ExtractedRecordMutation) InStoreCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldInStore]
	return ok
}

// ResetInStore resets all changes to the "in_store" field.
func (m *ExtractedRecordMutation) ResetInStore() {
	m.in_store = nil
	delete(m.clearedFields, extractedrecord.FieldInStore)
}

// SetLotNumber sets the "lot_number" field.
func (m *ExtractedRecordMutation) SetLotNumber(s string) {
	m.lot_number = &s
}

// LotNumber returns the value of the "lot_number" field in the mutation.
func (m *ExtractedRecordMutation) LotNumber() (r string, exists bool) {
	v := m.lot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLotNumber returns the old "lot_number" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldLotNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotNumber: %w", err)
	}
	return oldValue.LotNumber, nil
}

// ClearLotNumber clears the value of the "lot_number" field.
func (m *ExtractedRecordMutation) ClearLotNumber() {
	m.lot_number = nil
	m.clearedFields[extractedrecord.FieldLotNumber] = struct{}{}
}

// LotNumberCleared returns if the "lot_number" field was cleared in this mutation.
func (m *ExtractedRecordMutation) LotNumberCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldLotNumber]
	return ok
}

// ResetLotNumber resets all changes to the "lot_number" field.
func (m *ExtractedRecordMutation) ResetLotNumber() {
	m.lot_number = nil
	delete(m.clearedFields, extractedrecord.FieldLotNumber)
}

// SetColor sets the "color" field.
func (m *ExtractedRecordMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *ExtractedRecordMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *ExtractedRecordMutation) ClearColor() {
	m.color = nil
	m.clearedFields[extractedrecord.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ColorCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *ExtractedRecordMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, extractedrecord.FieldColor)
}

// SetMaterial sets the "material" field.
func (m *ExtractedRecordMutation) SetMaterial(s string) {
	m.material = &s
}

// Material returns the value of the "material" field in the mutation.
func (m *ExtractedRecordMutation) Material() (r string, exists bool) {
	v := m.material
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterial returns the old "material" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldMaterial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterial: %w", err)
	}
	return oldValue.Material, nil
}

// ClearMaterial clears the value of the "material" field.
func (m *ExtractedRecordMutation) ClearMaterial() {
	m.material = nil
	m.clearedFields[extractedrecord.FieldMaterial] = struct{}{}
}

// MaterialCleared returns if the "material" field was cleared in this mutation.
func (m *ExtractedRecordMutation) MaterialCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldMaterial]
	return ok
}

// ResetMaterial resets all changes to the "material" field.
func (m *ExtractedRecordMutation) ResetMaterial() {
	m.material = nil
	delete(m.clearedFields, extractedrecord.FieldMaterial)
}

// SetOrigin sets the "origin" field.
func (m *ExtractedRecordMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *ExtractedRecordMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldOrigin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ClearOrigin clears the value of the "origin" field.
func (m *ExtractedRecordMutation) ClearOrigin() {
	m.origin = nil
	m.clearedFields[extractedrecord.FieldOrigin] = struct{}{}
}

// OriginCleared returns if the "origin" field was cleared in this mutation.
func (m *ExtractedRecordMutation) OriginCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldOrigin]
	return ok
}

// ResetOrigin resets all changes to the "origin" field.
func (m *ExtractedRecordMutation) ResetOrigin() {
	m.origin = nil
	delete(m.clearedFields, extractedrecord.FieldOrigin)
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (m *ExtractedRecordMutation) SetCountryOfOrigin(s string) {
	m.country_of_origin = &s
}

// CountryOfOrigin returns the value of the "country_of_origin" field in the mutation.
func (m *ExtractedRecordMutation) CountryOfOrigin() (r string, exists bool) {
	v := m.country_of_origin
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryOfOrigin returns the old "country_of_origin" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCountryOfOrigin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryOfOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryOfOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryOfOrigin: %w", err)
	}
	return oldValue.CountryOfOrigin, nil
}

// ClearCountryOfOrigin clears the value of the "country_of_origin" field.
func (m *ExtractedRecordMutation) ClearCountryOfOrigin() {
	m.country_of_origin = nil
	m.clearedFields[extractedrecord.FieldCountryOfOrigin] = struct{}{}
}

// CountryOfOriginCleared returns if the "country_of_origin" field was cleared in this mutation.
func (m *ExtractedRecordMutation) CountryOfOriginCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldCountryOfOrigin]
	return ok
}

// ResetCountryOfOrigin resets all changes to the "country_of_origin" field.
func (m *ExtractedRecordMutation) ResetCountryOfOrigin() {
	m.country_of_origin = nil
	delete(m.clearedFields, extractedrecord.FieldCountryOfOrigin)
}

// SetTargetAge sets the "target_age" field.
func (m *ExtractedRecordMutation) SetTargetAge(s string) {
	m.target_age = &s
}

// TargetAge returns the value of the "target_age" field in the mutation.
func (m *ExtractedRecordMutation) TargetAge() (r string, exists bool) {
	v := m.target_age
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAge returns the old "target_age" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldTargetAge(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAge: %w", err)
	}
	return oldValue.TargetAge, nil
}

// ClearTargetAge clears the value of the "target_age" field.
func (m *ExtractedRecordMutation) ClearTargetAge() {
	m.target_age = nil
	m.clearedFields[extractedrecord.FieldTargetAge] = struct{}{}
}

// TargetAgeCleared returns if the "target_age" field was cleared in this mutation.
func (m *ExtractedRecordMutation) TargetAgeCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldTargetAge]
	return ok
}

// ResetTargetAge resets all changes to the "target_age" field.
func (m *ExtractedRecordMutation) ResetTargetAge() {
	m.target_age = nil
	delete(m.clearedFields, extractedrecord.FieldTargetAge)
}

// SetWarranty sets the "warranty" field.
func (m *ExtractedRecordMutation) SetWarranty(s string) {
	m.warranty = &s
}

// Warranty returns the value of the "warranty" field in the mutation.
func (m *ExtractedRecordMutation) Warranty() (r string, exists bool) {
	v := m.warranty
	if v == nil {
		return
	}
	return *v, true
}

// OldWarranty returns the old "warranty" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldWarranty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarranty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarranty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarranty: %w", err)
	}
	return oldValue.Warranty, nil
}

// ClearWarranty clears the value of the "warranty" field.
func (m *ExtractedRecordMutation) ClearWarranty() {
	m.warranty = nil
	m.clearedFields[extractedrecord.FieldWarranty] = struct{}{}
}

// WarrantyCleared returns if the "warranty" field was cleared in this mutation.
func (m *ExtractedRecordMutation) WarrantyCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldWarranty]
	return ok
}

// ResetWarranty resets all changes to the "warranty" field.
func (m *ExtractedRecordMutation) ResetWarranty() {
	m.warranty = nil
	delete(m.clearedFields, extractedrecord.FieldWarranty)
}

// SetDescription sets the "description" field.
func (m *ExtractedRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractedRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractedRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extractedrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractedRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractedRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extractedrecord.FieldDescription)
}

// SetImageUrls sets the "image_urls" field.
func (m *ExtractedRecordMutation) SetImageUrls(s []string) {
	m.image_urls = &s
	m.appendimage_urls = nil
}

// ImageUrls returns the value of the "image_urls" field in the mutation.
func (m *ExtractedRecordMutation) ImageUrls() (r []string, exists bool) {
	v := m.image_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldImageUrls returns the old "image_urls" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldImageUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageUrls: %w", err)
	}
	return oldValue.ImageUrls, nil
}

// AppendImageUrls adds s to the "image_urls" field.
func (m *ExtractedRecordMutation) AppendImageUrls(s []string) {
	m.appendimage_urls = append(m.appendimage_urls, s...)
}

// AppendedImageUrls returns the list of values that were appended to the "image_urls" field in this mutation.
func (m *ExtractedRecordMutation) AppendedImageUrls() ([]string, bool) {
	if len(m.appendimage_urls) == 0 {
		return nil, false
	}
	return m.appendimage_urls, true
}

// ClearImageUrls clears the value of the "image_urls" field.
func (m *ExtractedRecordMutation) ClearImageUrls() {
	m.image_urls = nil
	m.appendimage_urls = nil
	m.clearedFields[extractedrecord.FieldImageUrls] = struct{}{}
}

// ImageUrlsCleared returns if the "image_urls" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ImageUrlsCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldImageUrls]
	return ok
}

// ResetImageUrls resets all changes to the "image_urls" field.
func (m *ExtractedRecordMutation) ResetImageUrls() {
	m.image_urls = nil
	m.appendimage_urls = nil
	delete(m.clearedFields, extractedrecord.FieldImageUrls)
}

// SetRawText sets the "raw_text" field.
func (m *ExtractedRecordMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractedRecordMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractedRecordMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extractedrecord.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractedRecordMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractedRecordMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extractedrecord.FieldRawText)
}

// SetSectionText sets the "section_text" field.
func (m *ExtractedRecordMutation) SetSectionText(s string) {
	m.section_text = &s
}

// SectionText returns the value of the "section_text" field in the mutation.
func (m *ExtractedRecordMutation) SectionText() (r string, exists bool) {
	v := m.section_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionText returns the old "section_text" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldSectionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionText: %w", err)
	}
	return oldValue.SectionText, nil
}

// ClearSectionText clears the value of the "section_text" field.
func (m *ExtractedRecordMutation) ClearSectionText() {
	m.section_text = nil
	m.clearedFields[extractedrecord.FieldSectionText] = struct{}{}
}

// SectionTextCleared returns if the "section_text" field was cleared in this mutation.
func (m *ExtractedRecordMutation) SectionTextCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldSectionText]
	return ok
}

// ResetSectionText resets all changes to the "section_text" field.
func (m *ExtractedRecordMutation) ResetSectionText() {
	m.section_text = nil
	delete(m.clearedFields, extractedrecord.FieldSectionText)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractedRecordMutation) SetConfidenceScore(f float32) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractedRecordMutation) ConfidenceScore() (r float32, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldConfidenceScore(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractedRecordMutation) AddConfidenceScore(f float32) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractedRecordMutation) AddedConfidenceScore() (r float32, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractedRecordMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetStatus sets the "status" field.
func (m *ExtractedRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractedRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractedRecordMutation) ResetStatus() {
	m.status = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractedRecordMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractedRecordMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractedRecordMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetIsValidated sets the "is_validated" field.
func (m *ExtractedRecordMutation) SetIsValidated(b bool) {
	m.is_validated = &b
}

// IsValidated returns the value of the "is_validated" field in the mutation.
func (m *ExtractedRecordMutation) IsValidated() (r bool, exists bool) {
	v := m.is_validated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValidated returns the old "is_validated" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldIsValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValidated: %w", err)
	}
	return oldValue.IsValidated, nil
}

// ResetIsValidated resets all changes to the "is_validated" field.
func (m *ExtractedRecordMutation) ResetIsValidated() {
	m.is_validated = nil
}

// SetIsMultiProduct sets the "is_multi_product" field.
func (m *ExtractedRecordMutation) SetIsMultiProduct(b bool) {
	m.is_multi_product = &b
}

// IsMultiProduct returns the value of the "is_multi_product" field in the mutation.
func (m *ExtractedRecordMutation) IsMultiProduct() (r bool, exists bool) {
	v := m.is_multi_product
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMultiProduct returns the old "is_multi_product" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldIsMultiProduct(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMultiProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMultiProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMultiProduct: %w", err)
	}
	return oldValue.IsMultiProduct, nil
}

// ResetIsMultiProduct resets all changes to the "is_multi_product" field.
func (m *ExtractedRecordMutation) ResetIsMultiProduct() {
	m.is_multi_product = nil
}

// SetTotalProductsInFile sets the "total_products_in_file" field.
func (m *ExtractedRecordMutation) SetTotalProductsInFile(i int) {
	m.total_products_in_file = &i
	m.addtotal_products_in_file = nil
}

// TotalProductsInFile returns the value of the "total_products_in_file" field in the mutation.
func (m *ExtractedRecordMutation) TotalProductsInFile() (r int, exists bool) {
	v := m.total_products_in_file
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalProductsInFile returns the old "total_products_in_file" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldTotalProductsInFile(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalProductsInFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalProductsInFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalProductsInFile: %w", err)
	}
	return oldValue.TotalProductsInFile, nil
}

// AddTotalProductsInFile adds i to the "total_products_in_file" field.
func (m *ExtractedRecordMutation) AddTotalProductsInFile(i int) {
	if m.addtotal_products_in_file != nil {
		*m.addtotal_products_in_file += i
	} else {
		m.addtotal_products_in_file = &i
	}
}

// AddedTotalProductsInFile returns the value that was added to the "total_products_in_file" field in this mutation.
func (m *ExtractedRecordMutation) AddedTotalProductsInFile() (r int, exists bool) {
	v := m.addtotal_products_in_file
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalProductsInFile resets all changes to the "total_products_in_file" field.
func (m *ExtractedRecordMutation) ResetTotalProductsInFile() {
	m.total_products_in_file = nil
	m.addtotal_products_in_file = nil
}

// SetProductIndex sets the "product_index" field.
func (m *ExtractedRecordMutation) SetProductIndex(i int) {
	m.product_index = &i
	m.addproduct_index = nil
}

// ProductIndex returns the value of the "product_index" field in the mutation.
func (m *ExtractedRecordMutation) ProductIndex() (r int, exists bool) {
	v := m.product_index
	if v == nil {
		return
	}
	return *v, true
}

// OldProductIndex returns the old "product_index" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldProductIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductIndex: %w", err)
	}
	return oldValue.ProductIndex, nil
}

// AddProductIndex adds i to the "product_index" field.
func (m *ExtractedRecordMutation) AddProductIndex(i int) {
	if m.addproduct_index != nil {
		*m.addproduct_index += i
	} else {
		m.addproduct_index = &i
	}
}

// AddedProductIndex returns the value that was added to the "product_index" field in this mutation.
func (m *ExtractedRecordMutation) AddedProductIndex() (r int, exists bool) {
	v := m.addproduct_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetProductIndex resets all changes to the "product_index" field.
func (m *ExtractedRecordMutation) ResetProductIndex() {
	m.product_index = nil
	m.addproduct_index = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractedRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractedRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractedRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractedrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractedRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractedrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractedRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractedrecord.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedRecord entity.
// If the ExtractedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetJobID sets the "job" edge to the ConversionJob entity by id.
func (m *ExtractedRecordMutation) SetJobID(id uuid.UUID) {
	m.job = &id
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (m *ExtractedRecordMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[extractedrecord.FieldConversionJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ConversionJob entity was cleared.
func (m *ExtractedRecordMutation) JobCleared() bool {
	return m.ConversionJobIDCleared() || m.clearedjob
}

// JobID returns the "job" edge ID in the mutation.
func (m *ExtractedRecordMutation) JobID() (id uuid.UUID, exists bool) {
	if m.job != nil {
		return *m.job, true
	}
	return
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ExtractedRecordMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ExtractedRecordMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// SetFileID sets the "file" edge to the UploadFile entity by id.
func (m *ExtractedRecordMutation) SetFileID(id uuid.UUID) {
	m.file = &id
}

// ClearFile clears the "file" edge to the UploadFile entity.
func (m *ExtractedRecordMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractedrecord.FieldSourceFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the UploadFile entity was cleared.
func (m *ExtractedRecordMutation) FileCleared() bool {
	return m.clearedfile
}

// FileID returns the "file" edge ID in the mutation.
func (m *ExtractedRecordMutation) FileID() (id uuid.UUID, exists bool) {
	if m.file != nil {
		return *m.file, true
	}
	return
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractedRecordMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractedRecordMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the ExtractedRecordMutation builder.
func (m *ExtractedRecordMutation) Where(ps ...predicate.ExtractedRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedRecord).
func (m *ExtractedRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedRecordMutation) Fields() []string {
	fields := make([]string, 0, 61)
	if m.owner_id != nil {
		fields = append(fields, extractedrecord.FieldOwnerID)
	}
	if m.job != nil {
		fields = append(fields, extractedrecord.FieldConversionJobID)
	}
	if m.file != nil {
		fields = append(fields, extractedrecord.FieldSourceFileID)
	}
	if m.product_name != nil {
		fields = append(fields, extractedrecord.FieldProductName)
	}
	if m.sku != nil {
		fields = append(fields, extractedrecord.FieldSku)
	}
	if m.product_code != nil {
		fields = append(fields, extractedrecord.FieldProductCode)
	}
	if m.jan_code != nil {
		fields = append(fields, extractedrecord.FieldJanCode)
	}
	if m.character_name != nil {
		fields = append(fields, extractedrecord.FieldCharacterName)
	}
	if m.brand != nil {
		fields = append(fields, extractedrecord.FieldBrand)
	}
	if m.manufacturer != nil {
		fields = append(fields, extractedrecord.FieldManufacturer)
	}
	if m.supplier_name != nil {
		fields = append(fields, extractedrecord.FieldSupplierName)
	}
	if m.ip_name != nil {
		fields = append(fields, extractedrecord.FieldIPName)
	}
	if m.price != nil {
		fields = append(fields, extractedrecord.FieldPrice)
	}
	if m.reference_sales_price != nil {
		fields = append(fields, extractedrecord.FieldReferenceSalesPrice)
	}
	if m.wholesale_price != nil {
		fields = append(fields, extractedrecord.FieldWholesalePrice)
	}
	if m.order_amount != nil {
		fields = append(fields, extractedrecord.FieldOrderAmount)
	}
	if m.stock != nil {
		fields = append(fields, extractedrecord.FieldStock)
	}
	if m.wholesale_quantity != nil {
		fields = append(fields, extractedrecord.FieldWholesaleQuantity)
	}
	if m.release_date != nil {
		fields = append(fields, extractedrecord.FieldReleaseDate)
	}
	if m.reservation_release_date != nil {
		fields = append(fields, extractedrecord.FieldReservationReleaseDate)
	}
	if m.reservation_deadline != nil {
		fields = append(fields, extractedrecord.FieldReservationDeadline)
	}
	if m.reservation_shipping_date != nil {
		fields = append(fields, extractedrecord.FieldReservationShippingDate)
	}
	if m.dimensions != nil {
		fields = append(fields, extractedrecord.FieldDimensions)
	}
	if m.single_product_size != nil {
		fields = append(fields, extractedrecord.FieldSingleProductSize)
	}
	if m.package_size != nil {
		fields = append(fields, extractedrecord.FieldPackageSize)
	}
	if m.inner_box_size != nil {
		fields = append(fields, extractedrecord.FieldInnerBoxSize)
	}
	if m.carton_size != nil {
		fields = append(fields, extractedrecord.FieldCartonSize)
	}
	if m.weight != nil {
		fields = append(fields, extractedrecord.FieldWeight)
	}
	if m.package_type != nil {
		fields = append(fields, extractedrecord.FieldPackageType)
	}
	if m.protective_film != nil {
		fields = append(fields, extractedrecord.FieldProtectiveFilm)
	}
	if m.quantity_per_pack != nil {
		fields = append(fields, extractedrecord.FieldQuantityPerPack)
	}
	if m.case_pack_quantity != nil {
		fields = append(fields, extractedrecord.FieldCasePackQuantity)
	}
	if m.inner_box_gtin != nil {
		fields = append(fields, extractedrecord.FieldInnerBoxGtin)
	}
	if m.outer_box_gtin != nil {
		fields = append(fields, extractedrecord.FieldOuterBoxGtin)
	}
	if m.category != nil {
		fields = append(fields, extractedrecord.FieldCategory)
	}
	if m.major_category != nil {
		fields = append(fields, extractedrecord.FieldMajorCategory)
	}
	if m.minor_category != nil {
		fields = append(fields, extractedrecord.FieldMinorCategory)
	}
	if m.genre_name != nil {
		fields = append(fields, extractedrecord.FieldGenreName)
	}
	if m.classification != nil {
		fields = append(fields, extractedrecord.FieldClassification)
	}
	if m.in_store != nil {
		fields = append(fields, extractedrecord.FieldInStore)
	}
	if m.lot_number != nil {
		fields = append(fields, extractedrecord.FieldLotNumber)
	}
	if m.color != nil {
		fields = append(fields, extractedrecord.FieldColor)
	}
	if m.material != nil {
		fields = append(fields, extractedrecord.FieldMaterial)
	}
	if m.origin != nil {
		fields = append(fields, extractedrecord.FieldOrigin)
	}
	if m.country_of_origin != nil {
		fields = append(fields, extractedrecord.FieldCountryOfOrigin)
	}
	if m.target_age != nil {
		fields = append(fields, extractedrecord.FieldTargetAge)
	}
	if m.warranty != nil {
		fields = append(fields, extractedrecord.FieldWarranty)
	}
	if m.description != nil {
		fields = append(fields, extractedrecord.FieldDescription)
	}
	if m.image_urls != nil {
		fields = append(fields, extractedrecord.FieldImageUrls)
	}
	if m.raw_text != nil {
		fields = append(fields, extractedrecord.FieldRawText)
	}
	if m.section_text != nil {
		fields = append(fields, extractedrecord.FieldSectionText)
	}
	if m.confidence_score != nil {
		fields = append(fields, extractedrecord.FieldConfidenceScore)
	}
	if m.status != nil {
		fields = append(fields, extractedrecord.FieldStatus)
	}
	if m.needs_review != nil {
		fields = append(fields, extractedrecord.FieldNeedsReview)
	}
	if m.is_validated != nil {
		fields = append(fields, extractedrecord.FieldIsValidated)
	}
	if m.is_multi_product != nil {
		fields = append(fields, extractedrecord.FieldIsMultiProduct)
	}
	if m.total_products_in_file != nil {
		fields = append(fields, extractedrecord.FieldTotalProductsInFile)
	}
	if m.product_index != nil {
		fields = append(fields, extractedrecord.FieldProductIndex)
	}
	if m.error_message != nil {
		fields = append(fields, extractedrecord.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extractedrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractedrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedrecord.FieldOwnerID:
		return m.OwnerID()
	case extractedrecord.FieldConversionJobID:
		return m.ConversionJobID()
	case extractedrecord.FieldSourceFileID:
		return m.SourceFileID()
	case extractedrecord.FieldProductName:
		return m.ProductName()
	case extractedrecord.FieldSku:
		return m.Sku()
	case extractedrecord.FieldProductCode:
		return m.ProductCode()
	case extractedrecord.FieldJanCode:
		return m.JanCode()
	case extractedrecord.FieldCharacterName:
		return m.CharacterName()
	case extractedrecord.FieldBrand:
		return m.Brand()
	case extractedrecord.FieldManufacturer:
		return m.Manufacturer()
	case extractedrecord.FieldSupplierName:
		return m.SupplierName()
	case extractedrecord.FieldIPName:
		return m.IPName()
	case extractedrecord.FieldPrice:
		return m.Price()
	case extractedrecord.FieldReferenceSalesPrice:
		return m.ReferenceSalesPrice()
	case extractedrecord.FieldWholesalePrice:
		return m.WholesalePrice()
	case extractedrecord.FieldOrderAmount:
		return m.OrderAmount()
	case extractedrecord.FieldStock:
		return m.Stock()
	case extractedrecord.FieldWholesaleQuantity:
		return m.WholesaleQuantity()
	case extractedrecord.FieldReleaseDate:
		return m.ReleaseDate()
	case extractedrecord.FieldReservationReleaseDate:
		return m.ReservationReleaseDate()
	case extractedrecord.FieldReservationDeadline:
		return m.ReservationDeadline()
	case extractedrecord.FieldReservationShippingDate:
		return m.ReservationShippingDate()
	case extractedrecord.FieldDimensions:
		return m.Dimensions()
	case extractedrecord.FieldSingleProductSize:
		return m.SingleProductSize()
	case extractedrecord.FieldPackageSize:
		return m.PackageSize()
	case extractedrecord.FieldInnerBoxSize:
		return m.InnerBoxSize()
	case extractedrecord.FieldCartonSize:
		return m.CartonSize()
	case extractedrecord.FieldWeight:
		return m.Weight()
	case extractedrecord.FieldPackageType:
		return m.PackageType()
	case extractedrecord.FieldProtectiveFilm:
		return m.ProtectiveFilm()
	case extractedrecord.FieldQuantityPerPack:
		return m.QuantityPerPack()
	case extractedrecord.FieldCasePackQuantity:
		return m.CasePackQuantity()
	case extractedrecord.FieldInnerBoxGtin:
		return m.InnerBoxGtin()
	case extractedrecord.FieldOuterBoxGtin:
		return m.OuterBoxGtin()
	case extractedrecord.FieldCategory:
		return m.Category()
	case extractedrecord.FieldMajorCategory:
		return m.MajorCategory()
	case extractedrecord.FieldMinorCategory:
		return m.MinorCategory()
	case extractedrecord.FieldGenreName:
		return m.GenreName()
	case extractedrecord.FieldClassification:
		return m.Classification()
	case extractedrecord.FieldInStore:
		return m.InStore()
	case extractedrecord.FieldLotNumber:
		return m.LotNumber()
	case extractedrecord.FieldColor:
		return m.Color()
	case extractedrecord.FieldMaterial:
		return m.Material()
	case extractedrecord.FieldOrigin:
		return m.Origin()
	case extractedrecord.FieldCountryOfOrigin:
		return m.CountryOfOrigin()
	case extractedrecord.FieldTargetAge:
		return m.TargetAge()
	case extractedrecord.FieldWarranty:
		return m.Warranty()
	case extractedrecord.FieldDescription:
		return m.Description()
	case extractedrecord.FieldImageUrls:
		return m.ImageUrls()
	case extractedrecord.FieldRawText:
		return m.RawText()
	case extractedrecord.FieldSectionText:
		return m.SectionText()
	case extractedrecord.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extractedrecord.FieldStatus:
		return m.Status()
	case extractedrecord.FieldNeedsReview:
		return m.NeedsReview()
	case extractedrecord.FieldIsValidated:
		return m.IsValidated()
	case extractedrecord.FieldIsMultiProduct:
		return m.IsMultiProduct()
	case extractedrecord.FieldTotalProductsInFile:
		return m.TotalProductsInFile()
	case extractedrecord.FieldProductIndex:
		return m.ProductIndex()
	case extractedrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case extractedrecord.FieldCreatedAt:
		return m.CreatedAt()
	case extractedrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedrecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case extractedrecord.FieldConversionJobID:
		return m.OldConversionJobID(ctx)
	case extractedrecord.FieldSourceFileID:
		return m.OldSourceFileID(ctx)
	case extractedrecord.FieldProductName:
		return m.OldProductName(ctx)
	case extractedrecord.FieldSku:
		return m.OldSku(ctx)
	case extractedrecord.FieldProductCode:
		return m.OldProductCode(ctx)
	case extractedrecord.FieldJanCode:
		return m.OldJanCode(ctx)
	case extractedrecord.FieldCharacterName:
		return m.OldCharacterName(ctx)
	case extractedrecord.FieldBrand:
		return m.OldBrand(ctx)
	case extractedrecord.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case extractedrecord.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case extractedrecord.FieldIPName:
		return m.OldIPName(ctx)
	case extractedrecord.FieldPrice:
		return m.OldPrice(ctx)
	case extractedrecord.FieldReferenceSalesPrice:
		return m.OldReferenceSalesPrice(ctx)
	case extractedrecord.FieldWholesalePrice:
		return m.OldWholesalePrice(ctx)
	case extractedrecord.FieldOrderAmount:
		return m.OldOrderAmount(ctx)
	case extractedrecord.FieldStock:
		return m.OldStock(ctx)
	case extractedrecord.FieldWholesaleQuantity:
		return m.OldWholesaleQuantity(ctx)
	case extractedrecord.FieldReleaseDate:
		return m.OldReleaseDate(ctx)
	case extractedrecord.FieldReservationReleaseDate:
		return m.OldReservationReleaseDate(ctx)
	case extractedrecord.FieldReservationDeadline:
		return m.OldReservationDeadline(ctx)
	case extractedrecord.FieldReservationShippingDate:
		return m.OldReservationShippingDate(ctx)
	case extractedrecord.FieldDimensions:
		return m.OldDimensions(ctx)
	case extractedrecord.FieldSingleProductSize:
		return m.OldSingleProductSize(ctx)
	case extractedrecord.FieldPackageSize:
		return m.OldPackageSize(ctx)
	case extractedrecord.FieldInnerBoxSize:
		return m.OldInnerBoxSize(ctx)
	case extractedrecord.FieldCartonSize:
		return m.OldCartonSize(ctx)
	case extractedrecord.FieldWeight:
		return m.OldWeight(ctx)
	case extractedrecord.FieldPackageType:
		return m.OldPackageType(ctx)
	case extractedrecord.FieldProtectiveFilm:
		return m.OldProtectiveFilm(ctx)
	case extractedrecord.FieldQuantityPerPack:
		return m.OldQuantityPerPack(ctx)
	case extractedrecord.FieldCasePackQuantity:
		return m.OldCasePackQuantity(ctx)
	case extractedrecord.FieldInnerBoxGtin:
		return m.OldInnerBoxGtin(ctx)
	case extractedrecord.FieldOuterBoxGtin:
		return m.OldOuterBoxGtin(ctx)
	case extractedrecord.FieldCategory:
		return m.OldCategory(ctx)
	case extractedrecord.FieldMajorCategory:
		return m.OldMajorCategory(ctx)
	case extractedrecord.FieldMinorCategory:
		return m.OldMinorCategory(ctx)
	case extractedrecord.FieldGenreName:
		return m.OldGenreName(ctx)
	case extractedrecord.FieldClassification:
		return m.OldClassification(ctx)
	case extractedrecord.FieldInStore:
		return m.OldInStore(ctx)
	case extractedrecord.FieldLotNumber:
		return m.OldLotNumber(ctx)
	case extractedrecord.FieldColor:
		return m.OldColor(ctx)
	case extractedrecord.FieldMaterial:
		return m.OldMaterial(ctx)
	case extractedrecord.FieldOrigin:
		return m.OldOrigin(ctx)
	case extractedrecord.FieldCountryOfOrigin:
		return m.OldCountryOfOrigin(ctx)
	case extractedrecord.FieldTargetAge:
		return m.OldTargetAge(ctx)
	case extractedrecord.FieldWarranty:
		return m.OldWarranty(ctx)
	case extractedrecord.FieldDescription:
		return m.OldDescription(ctx)
	case extractedrecord.FieldImageUrls:
		return m.OldImageUrls(ctx)
	case extractedrecord.FieldRawText:
		return m.OldRawText(ctx)
	case extractedrecord.FieldSectionText:
		return m.OldSectionText(ctx)
	case extractedrecord.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extractedrecord.FieldStatus:
		return m.OldStatus(ctx)
	case extractedrecord.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractedrecord.FieldIsValidated:
		return m.OldIsValidated(ctx)
	case extractedrecord.FieldIsMultiProduct:
		return m.OldIsMultiProduct(ctx)
	case extractedrecord.FieldTotalProductsInFile:
		return m.OldTotalProductsInFile(ctx)
	case extractedrecord.FieldProductIndex:
		return m.OldProductIndex(ctx)
	case extractedrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractedrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractedrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedrecord.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case extractedrecord.FieldConversionJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversionJobID(v)
		return nil
	case extractedrecord.FieldSourceFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFileID(v)
		return nil
	case extractedrecord.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case extractedrecord.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case extractedrecord.FieldProductCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductCode(v)
		return nil
	case extractedrecord.FieldJanCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJanCode(v)
		return nil
	case extractedrecord.FieldCharacterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacterName(v)
		return nil
	case extractedrecord.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case extractedrecord.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case extractedrecord.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case extractedrecord.FieldIPName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPName(v)
		return nil
	case extractedrecord.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case extractedrecord.FieldReferenceSalesPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceSalesPrice(v)
		return nil
	case extractedrecord.FieldWholesalePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWholesalePrice(v)
		return nil
	case extractedrecord.FieldOrderAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderAmount(v)
		return nil
	case extractedrecord.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStock(v)
		return nil
	case extractedrecord.FieldWholesaleQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWholesaleQuantity(v)
		return nil
	case extractedrecord.FieldReleaseDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleaseDate(v)
		return nil
	case extractedrecord.FieldReservationReleaseDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationReleaseDate(v)
		return nil
	case extractedrecord.FieldReservationDeadline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationDeadline(v)
		return nil
	case extractedrecord.FieldReservationShippingDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationShippingDate(v)
		return nil
	case extractedrecord.FieldDimensions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensions(v)
		return nil
	case extractedrecord.FieldSingleProductSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingleProductSize(v)
		return nil
	case extractedrecord.FieldPackageSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageSize(v)
		return nil
	case extractedrecord.FieldInnerBoxSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInnerBoxSize(v)
		return nil
	case extractedrecord.FieldCartonSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCartonSize(v)
		return nil
	case extractedrecord.FieldWeight:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case extractedrecord.FieldPackageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageType(v)
		return nil
	case extractedrecord.FieldProtectiveFilm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtectiveFilm(v)
		return nil
	case extractedrecord.FieldQuantityPerPack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantityPerPack(v)
		return nil
	case extractedrecord.FieldCasePackQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCasePackQuantity(v)
		return nil
	case extractedrecord.FieldInnerBoxGtin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInnerBoxGtin(v)
		return nil
	case extractedrecord.FieldOuterBoxGtin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOuterBoxGtin(v)
		return nil
	case extractedrecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extractedrecord.FieldMajorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajorCategory(v)
		return nil
	case extractedrecord.FieldMinorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorCategory(v)
		return nil
	case extractedrecord.FieldGenreName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenreName(v)
		return nil
	case extractedrecord.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case extractedrecord.FieldInStore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInStore(v)
		return nil
	case extractedrecord.FieldLotNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotNumber(v)
		return nil
	case extractedrecord.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case extractedrecord.FieldMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterial(v)
		return nil
	case extractedrecord.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case extractedrecord.FieldCountryOfOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryOfOrigin(v)
		return nil
	case extractedrecord.FieldTargetAge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAge(v)
		return nil
	case extractedrecord.FieldWarranty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarranty(v)
		return nil
	case extractedrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractedrecord.FieldImageUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageUrls(v)
		return nil
	case extractedrecord.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extractedrecord.FieldSectionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionText(v)
		return nil
	case extractedrecord.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extractedrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractedrecord.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractedrecord.FieldIsValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValidated(v)
		return nil
	case extractedrecord.FieldIsMultiProduct:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMultiProduct(v)
		return nil
	case extractedrecord.FieldTotalProductsInFile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalProductsInFile(v)
		return nil
	case extractedrecord.FieldProductIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductIndex(v)
		return nil
	case extractedrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractedrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractedrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedRecordMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, extractedrecord.FieldPrice)
	}
	if m.addreference_sales_price != nil {
		fields = append(fields, extractedrecord.FieldReferenceSalesPrice)
	}
	if m.addwholesale_price != nil {
		fields = append(fields, extractedrecord.FieldWholesalePrice)
	}
	if m.addorder_amount != nil {
		fields = append(fields, extractedrecord.FieldOrderAmount)
	}
	if m.addstock != nil {
		fields = append(fields, extractedrecord.FieldStock)
	}
	if m.addwholesale_quantity != nil {
		fields = append(fields, extractedrecord.FieldWholesaleQuantity)
	}
	if m.addcase_pack_quantity != nil {
		fields = append(fields, extractedrecord.FieldCasePackQuantity)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, extractedrecord.FieldConfidenceScore)
	}
	if m.addtotal_products_in_file != nil {
		fields = append(fields, extractedrecord.FieldTotalProductsInFile)
	}
	if m.addproduct_index != nil {
		fields = append(fields, extractedrecord.FieldProductIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedrecord.FieldPrice:
		return m.AddedPrice()
	case extractedrecord.FieldReferenceSalesPrice:
		return m.AddedReferenceSalesPrice()
	case extractedrecord.FieldWholesalePrice:
		return m.AddedWholesalePrice()
	case extractedrecord.FieldOrderAmount:
		return m.AddedOrderAmount()
	case extractedrecord.FieldStock:
		return m.AddedStock()
	case extractedrecord.FieldWholesaleQuantity:
		return m.AddedWholesaleQuantity()
	case extractedrecord.FieldCasePackQuantity:
		return m.AddedCasePackQuantity()
	case extractedrecord.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case extractedrecord.FieldTotalProductsInFile:
		return m.AddedTotalProductsInFile()
	case extractedrecord.FieldProductIndex:
		return m.AddedProductIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedrecord.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case extractedrecord.FieldReferenceSalesPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferenceSalesPrice(v)
		return nil
	case extractedrecord.FieldWholesalePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWholesalePrice(v)
		return nil
	case extractedrecord.FieldOrderAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderAmount(v)
		return nil
	case extractedrecord.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStock(v)
		return nil
	case extractedrecord.FieldWholesaleQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWholesaleQuantity(v)
		return nil
	case extractedrecord.FieldCasePackQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCasePackQuantity(v)
		return nil
	case extractedrecord.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case extractedrecord.FieldTotalProductsInFile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalProductsInFile(v)
		return nil
	case extractedrecord.FieldProductIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProductIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedrecord.FieldConversionJobID) {
		fields = append(fields, extractedrecord.FieldConversionJobID)
	}
	if m.FieldCleared(extractedrecord.FieldProductName) {
		fields = append(fields, extractedrecord.FieldProductName)
	}
	if m.FieldCleared(extractedrecord.FieldSku) {
		fields = append(fields, extractedrecord.FieldSku)
	}
	if m.FieldCleared(extractedrecord.FieldProductCode) {
		fields = append(fields, extractedrecord.FieldProductCode)
	}
	if m.FieldCleared(extractedrecord.FieldJanCode) {
		fields = append(fields, extractedrecord.FieldJanCode)
	}
	if m.FieldCleared(extractedrecord.FieldCharacterName) {
		fields = append(fields, extractedrecord.FieldCharacterName)
	}
	if m.FieldCleared(extractedrecord.FieldBrand) {
		fields = append(fields, extractedrecord.FieldBrand)
	}
	if m.FieldCleared(extractedrecord.FieldManufacturer) {
		fields = append(fields, extractedrecord.FieldManufacturer)
	}
	if m.FieldCleared(extractedrecord.FieldSupplierName) {
		fields = append(fields, extractedrecord.FieldSupplierName)
	}
	if m.FieldCleared(extractedrecord.FieldIPName) {
		fields = append(fields, extractedrecord.FieldIPName)
	}
	if m.FieldCleared(extractedrecord.FieldPrice) {
		fields = append(fields, extractedrecord.FieldPrice)
	}
	if m.FieldCleared(extractedrecord.FieldReferenceSalesPrice) {
		fields = append(fields, extractedrecord.FieldReferenceSalesPrice)
	}
	if m.FieldCleared(extractedrecord.FieldWholesalePrice) {
		fields = append(fields, extractedrecord.FieldWholesalePrice)
	}
	if m.FieldCleared(extractedrecord.FieldOrderAmount) {
		fields = append(fields, extractedrecord.FieldOrderAmount)
	}
	if m.FieldCleared(extractedrecord.FieldStock) {
		fields = append(fields, extractedrecord.FieldStock)
	}
	if m.FieldCleared(extractedrecord.FieldWholesaleQuantity) {
		fields = append(fields, extractedrecord.FieldWholesaleQuantity)
	}
	if m.FieldCleared(extractedrecord.FieldReleaseDate) {
		fields = append(fields, extractedrecord.FieldReleaseDate)
	}
	if m.FieldCleared(extractedrecord.FieldReservationReleaseDate) {
		fields = append(fields, extractedrecord.FieldReservationReleaseDate)
	}
	if m.FieldCleared(extractedrecord.FieldReservationDeadline) {
		fields = append(fields, extractedrecord.FieldReservationDeadline)
	}
	if m.FieldCleared(extractedrecord.FieldReservationShippingDate) {
		fields = append(fields, extractedrecord.FieldReservationShippingDate)
	}
	if m.FieldCleared(extractedrecord.FieldDimensions) {
		fields = append(fields, extractedrecord.FieldDimensions)
	}
	if m.FieldCleared(extractedrecord.FieldSingleProductSize) {
		fields = append(fields, extractedrecord.FieldSingleProductSize)
	}
	if m.FieldCleared(extractedrecord.FieldPackageSize) {
		fields = append(fields, extractedrecord.FieldPackageSize)
	}
	if m.FieldCleared(extractedrecord.FieldInnerBoxSize) {
		fields = append(fields, extractedrecord.FieldInnerBoxSize)
	}
	if m.FieldCleared(extractedrecord.FieldCartonSize) {
		fields = append(fields, extractedrecord.FieldCartonSize)
	}
	if m.FieldCleared(extractedrecord.FieldWeight) {
		fields = append(fields, extractedrecord.FieldWeight)
	}
	if m.FieldCleared(extractedrecord.FieldPackageType) {
		fields = append(fields, extractedrecord.FieldPackageType)
	}
	if m.FieldCleared(extractedrecord.FieldProtectiveFilm) {
		fields = append(fields, extractedrecord.FieldProtectiveFilm)
	}
	if m.FieldCleared(extractedrecord.FieldQuantityPerPack) {
		fields = append(fields, extractedrecord.FieldQuantityPerPack)
	}
	if m.FieldCleared(extractedrecord.FieldCasePackQuantity) {
		fields = append(fields, extractedrecord.FieldCasePackQuantity)
	}
	if m.FieldCleared(extractedrecord.FieldInnerBoxGtin) {
		fields = append(fields, extractedrecord.FieldInnerBoxGtin)
	}
	if m.FieldCleared(extractedrecord.FieldOuterBoxGtin) {
		fields = append(fields, extractedrecord.FieldOuterBoxGtin)
	}
	if m.FieldCleared(extractedrecord.FieldCategory) {
		fields = append(fields, extractedrecord.FieldCategory)
	}
	if m.FieldCleared(extractedrecord.FieldMajorCategory) {
		fields = append(fields, extractedrecord.FieldMajorCategory)
	}
	if m.FieldCleared(extractedrecord.FieldMinorCategory) {
		fields = append(fields, extractedrecord.FieldMinorCategory)
	}
	if m.FieldCleared(extractedrecord.FieldGenreName) {
		fields = append(fields, extractedrecord.FieldGenreName)
	}
	if m.FieldCleared(extractedrecord.FieldClassification) {
		fields = append(fields, extractedrecord.FieldClassification)
	}
	if m.FieldCleared(extractedrecord.FieldInStore) {
		fields = append(fields, extractedrecord.FieldInStore)
	}
	if m.FieldCleared(extractedrecord.FieldLotNumber) {
		fields = append(fields, extractedrecord.FieldLotNumber)
	}
	if m.FieldCleared(extractedrecord.FieldColor) {
		fields = append(fields, extractedrecord.FieldColor)
	}
	if m.FieldCleared(extractedrecord.FieldMaterial) {
		fields = append(fields, extractedrecord.FieldMaterial)
	}
	if m.FieldCleared(extractedrecord.FieldOrigin) {
		fields = append(fields, extractedrecord.FieldOrigin)
	}
	if m.FieldCleared(extractedrecord.FieldCountryOfOrigin) {
		fields = append(fields, extractedrecord.FieldCountryOfOrigin)
	}
	if m.FieldCleared(extractedrecord.FieldTargetAge) {
		fields = append(fields, extractedrecord.FieldTargetAge)
	}
	if m.FieldCleared(extractedrecord.FieldWarranty) {
		fields = append(fields, extractedrecord.FieldWarranty)
	}
	if m.FieldCleared(extractedrecord.FieldDescription) {
		fields = append(fields, extractedrecord.FieldDescription)
	}
	if m.FieldCleared(extractedrecord.FieldImageUrls) {
		fields = append(fields, extractedrecord.FieldImageUrls)
	}
	if m.FieldCleared(extractedrecord.FieldRawText) {
		fields = append(fields, extractedrecord.FieldRawText)
	}
	if m.FieldCleared(extractedrecord.FieldSectionText) {
		fields = append(fields, extractedrecord.FieldSectionText)
	}
	if m.FieldCleared(extractedrecord.FieldErrorMessage) {
		fields = append(fields, extractedrecord.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedRecordMutation) ClearField(name string) error {
	switch name {
	case extractedrecord.FieldConversionJobID:
		m.ClearConversionJobID()
		return nil
	case extractedrecord.FieldProductName:
		m.ClearProductName()
		return nil
	case extractedrecord.FieldSku:
		m.ClearSku()
		return nil
	case extractedrecord.FieldProductCode:
		m.ClearProductCode()
		return nil
	case extractedrecord.FieldJanCode:
		m.ClearJanCode()
		return nil
	case extractedrecord.FieldCharacterName:
		m.ClearCharacterName()
		return nil
	case extractedrecord.FieldBrand:
		m.ClearBrand()
		return nil
	case extractedrecord.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case extractedrecord.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case extractedrecord.FieldIPName:
		m.ClearIPName()
		return nil
	case extractedrecord.FieldPrice:
		m.ClearPrice()
		return nil
	case extractedrecord.FieldReferenceSalesPrice:
		m.ClearReferenceSalesPrice()
		return nil
	case extractedrecord.FieldWholesalePrice:
		m.ClearWholesalePrice()
		return nil
	case extractedrecord.FieldOrderAmount:
		m.ClearOrderAmount()
		return nil
	case extractedrecord.FieldStock:
		m.ClearStock()
		return nil
	case extractedrecord.FieldWholesaleQuantity:
		m.ClearWholesaleQuantity()
		return nil
	case extractedrecord.FieldReleaseDate:
		m.ClearReleaseDate()
		return nil
	case extractedrecord.FieldReservationReleaseDate:
		m.ClearReservationReleaseDate()
		return nil
	case extractedrecord.FieldReservationDeadline:
		m.ClearReservationDeadline()
		return nil
	case extractedrecord.FieldReservationShippingDate:
		m.ClearReservationShippingDate()
		return nil
	case extractedrecord.FieldDimensions:
		m.ClearDimensions()
		return nil
	case extractedrecord.FieldSingleProductSize:
		m.ClearSingleProductSize()
		return nil
	case extractedrecord.FieldPackageSize:
		m.ClearPackageSize()
		return nil
	case extractedrecord.FieldInnerBoxSize:
		m.ClearInnerBoxSize()
		return nil
	case extractedrecord.FieldCartonSize:
		m.ClearCartonSize()
		return nil
	case extractedrecord.FieldWeight:
		m.ClearWeight()
		return nil
	case extractedrecord.FieldPackageType:
		m.ClearPackageType()
		return nil
	case extractedrecord.FieldProtectiveFilm:
		m.ClearProtectiveFilm()
		return nil
	case extractedrecord.FieldQuantityPerPack:
		m.ClearQuantityPerPack()
		return nil
	case extractedrecord.FieldCasePackQuantity:
		m.ClearCasePackQuantity()
		return nil
	case extractedrecord.FieldInnerBoxGtin:
		m.ClearInnerBoxGtin()
		return nil
	case extractedrecord.FieldOuterBoxGtin:
		m.ClearOuterBoxGtin()
		return nil
	case extractedrecord.FieldCategory:
		m.ClearCategory()
		return nil
	case extractedrecord.FieldMajorCategory:
		m.ClearMajorCategory()
		return nil
	case extractedrecord.FieldMinorCategory:
		m.ClearMinorCategory()
		return nil
	case extractedrecord.FieldGenreName:
		m.ClearGenreName()
		return nil
	case extractedrecord.FieldClassification:
		m.ClearClassification()
		return nil
	case extractedrecord.FieldInStore:
		m.ClearInStore()
		return nil
	case extractedrecord.FieldLotNumber:
		m.ClearLotNumber()
		return nil
	case extractedrecord.FieldColor:
		m.ClearColor()
		return nil
	case extractedrecord.FieldMaterial:
		m.ClearMaterial()
		return nil
	case extractedrecord.FieldOrigin:
		m.ClearOrigin()
		return nil
	case extractedrecord.FieldCountryOfOrigin:
		m.ClearCountryOfOrigin()
		return nil
	case extractedrecord.FieldTargetAge:
		m.ClearTargetAge()
		return nil
	case extractedrecord.FieldWarranty:
		m.ClearWarranty()
		return nil
	case extractedrecord.FieldDescription:
		m.ClearDescription()
		return nil
	case extractedrecord.FieldImageUrls:
		m.ClearImageUrls()
		return nil
	case extractedrecord.FieldRawText:
		m.ClearRawText()
		return nil
	case extractedrecord.FieldSectionText:
		m.ClearSectionText()
		return nil
	case extractedrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedRecordMutation) ResetField(name string) error {
	switch name {
	case extractedrecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case extractedrecord.FieldConversionJobID:
		m.ResetConversionJobID()
		return nil
	case extractedrecord.FieldSourceFileID:
		m.ResetSourceFileID()
		return nil
	case extractedrecord.FieldProductName:
		m.ResetProductName()
		return nil
	case extractedrecord.FieldSku:
		m.ResetSku()
		return nil
	case extractedrecord.FieldProductCode:
		m.ResetProductCode()
		return nil
	case extractedrecord.FieldJanCode:
		m.ResetJanCode()
		return nil
	case extractedrecord.FieldCharacterName:
		m.ResetCharacterName()
		return nil
	case extractedrecord.FieldBrand:
		m.ResetBrand()
		return nil
	case extractedrecord.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case extractedrecord.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case extractedrecord.FieldIPName:
		m.ResetIPName()
		return nil
	case extractedrecord.FieldPrice:
		m.ResetPrice()
		return nil
	case extractedrecord.FieldReferenceSalesPrice:
		m.ResetReferenceSalesPrice()
		return nil
	case extractedrecord.FieldWholesalePrice:
		m.ResetWholesalePrice()
		return nil
	case extractedrecord.FieldOrderAmount:
		m.ResetOrderAmount()
		return nil
	case extractedrecord.FieldStock:
		m.ResetStock()
		return nil
	case extractedrecord.FieldWholesaleQuantity:
		m.ResetWholesaleQuantity()
		return nil
	case extractedrecord.FieldReleaseDate:
		m.ResetReleaseDate()
		return nil
	case extractedrecord.FieldReservationReleaseDate:
		m.ResetReservationReleaseDate()
		return nil
	case extractedrecord.FieldReservationDeadline:
		m.ResetReservationDeadline()
		return nil
	case extractedrecord.FieldReservationShippingDate:
		m.ResetReservationShippingDate()
		return nil
	case extractedrecord.FieldDimensions:
		m.ResetDimensions()
		return nil
	case extractedrecord.FieldSingleProductSize:
		m.ResetSingleProductSize()
		return nil
	case extractedrecord.FieldPackageSize:
		m.ResetPackageSize()
		return nil
	case extractedrecord.FieldInnerBoxSize:
		m.ResetInnerBoxSize()
		return nil
	case extractedrecord.FieldCartonSize:
		m.ResetCartonSize()
		return nil
	case extractedrecord.FieldWeight:
		m.ResetWeight()
		return nil
	case extractedrecord.FieldPackageType:
		m.ResetPackageType()
		return nil
	case extractedrecord.FieldProtectiveFilm:
		m.ResetProtectiveFilm()
		return nil
	case extractedrecord.FieldQuantityPerPack:
		m.ResetQuantityPerPack()
		return nil
	case extractedrecord.FieldCasePackQuantity:
		m.ResetCasePackQuantity()
		return nil
	case extractedrecord.FieldInnerBoxGtin:
		m.ResetInnerBoxGtin()
		return nil
	case extractedrecord.FieldOuterBoxGtin:
		m.ResetOuterBoxGtin()
		return nil
	case extractedrecord.FieldCategory:
		m.ResetCategory()
		return nil
	case extractedrecord.FieldMajorCategory:
		m.ResetMajorCategory()
		return nil
	case extractedrecord.FieldMinorCategory:
		m.ResetMinorCategory()
		return nil
	case extractedrecord.FieldGenreName:
		m.ResetGenreName()
		return nil
	case extractedrecord.FieldClassification:
		m.ResetClassification()
		return nil
	case extractedrecord.FieldInStore:
		m.ResetInStore()
		return nil
	case extractedrecord.FieldLotNumber:
		m.ResetLotNumber()
		return nil
	case extractedrecord.FieldColor:
		m.ResetColor()
		return nil
	case extractedrecord.FieldMaterial:
		m.ResetMaterial()
		return nil
	case extractedrecord.FieldOrigin:
		m.ResetOrigin()
		return nil
	case extractedrecord.FieldCountryOfOrigin:
		m.ResetCountryOfOrigin()
		return nil
	case extractedrecord.FieldTargetAge:
		m.ResetTargetAge()
		return nil
	case extractedrecord.FieldWarranty:
		m.ResetWarranty()
		return nil
	case extractedrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case extractedrecord.FieldImageUrls:
		m.ResetImageUrls()
		return nil
	case extractedrecord.FieldRawText:
		m.ResetRawText()
		return nil
	case extractedrecord.FieldSectionText:
		m.ResetSectionText()
		return nil
	case extractedrecord.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extractedrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case extractedrecord.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractedrecord.FieldIsValidated:
		m.ResetIsValidated()
		return nil
	case extractedrecord.FieldIsMultiProduct:
		m.ResetIsMultiProduct()
		return nil
	case extractedrecord.FieldTotalProductsInFile:
		m.ResetTotalProductsInFile()
		return nil
	case extractedrecord.FieldProductIndex:
		m.ResetProductIndex()
		return nil
	case extractedrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractedrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractedrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, extractedrecord.EdgeJob)
	}
	if m.file != nil {
		edges = append(edges, extractedrecord.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedrecord.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case extractedrecord.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, extractedrecord.EdgeJob)
	}
	if m.clearedfile {
		edges = append(edges, extractedrecord.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedrecord.EdgeJob:
		return m.clearedjob
	case extractedrecord.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedRecordMutation) ClearEdge(name string) error {
	switch name {
	case extractedrecord.EdgeJob:
		m.ClearJob()
		return nil
	case extractedrecord.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedRecordMutation) ResetEdge(name string) error {
	switch name {
	case extractedrecord.EdgeJob:
		m.ResetJob()
		return nil
	case extractedrecord.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown ExtractedRecord edge %s", name)
}

// UploadFileMutation represents an operation that mutates the UploadFile nodes in the graph.
type UploadFileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner_id       *uuid.UUID
	filename       *string
	file_path      *string
	file_ext       *string
	format         *string
	file_size      *int
	addfile_size   *int
	status         *string
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	records        map[uuid.UUID]struct{}
	removedrecords map[uuid.UUID]struct{}
	clearedrecords bool
	done           bool
	oldValue       func(context.Context) (*UploadFile, error)
	predicates     []predicate.UploadFile
}

var _ ent.Mutation = (*UploadFileMutation)(nil)

// uploadfileOption allows management of the mutation configuration using functional options.
type uploadfileOption func(*UploadFileMutation)

// newUploadFileMutation creates new mutation for the UploadFile entity.
func newUploadFileMutation(c config, op Op, opts ...uploadfileOption) *UploadFileMutation {
	m := &UploadFileMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadFileID sets the ID field of the mutation.
func withUploadFileID(id uuid.UUID) uploadfileOption {
	return func(m *UploadFileMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadFile
		)
		m.oldValue = func(ctx context.Context) (*UploadFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadFile sets the old UploadFile of the mutation.
func withUploadFile(node *UploadFile) uploadfileOption {
	return func(m *UploadFileMutation) {
		m.oldValue = func(context.Context) (*UploadFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadFile entities.
func (m *UploadFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *UploadFileMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UploadFileMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UploadFileMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFilename sets the "filename" field.
func (m *UploadFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *UploadFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *UploadFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *UploadFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *UploadFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *UploadFileMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *UploadFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *UploadFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *UploadFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFormat sets the "format" field.
func (m *UploadFileMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *UploadFileMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *UploadFileMutation) ResetFormat() {
	m.format = nil
}

// SetFileSize sets the "file_size" field.
func (m *UploadFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *UploadFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *UploadFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *UploadFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *UploadFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStatus sets the "status" field.
func (m *UploadFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadFileMutation) ResetStatus() {
	m.status = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *UploadFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *UploadFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the UploadFile entity.
// If the UploadFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *UploadFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddRecordIDs adds the "records" edge to the ExtractedRecord entity by ids.
func (m *UploadFileMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the ExtractedRecord entity.
func (m *UploadFileMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the ExtractedRecord entity was cleared.
func (m *UploadFileMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the ExtractedRecord entity by IDs.
func (m *UploadFileMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the ExtractedRecord entity.
func (m *UploadFileMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *UploadFileMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *UploadFileMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the UploadFileMutation builder.
func (m *UploadFileMutation) Where(ps ...predicate.UploadFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadFile).
func (m *UploadFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, uploadfile.FieldOwnerID)
	}
	if m.filename != nil {
		fields = append(fields, uploadfile.FieldFilename)
	}
	if m.file_path != nil {
		fields = append(fields, uploadfile.FieldFilePath)
	}
	if m.file_ext != nil {
		fields = append(fields, uploadfile.FieldFileExt)
	}
	if m.format != nil {
		fields = append(fields, uploadfile.FieldFormat)
	}
	if m.file_size != nil {
		fields = append(fields, uploadfile.FieldFileSize)
	}
	if m.status != nil {
		fields = append(fields, uploadfile.FieldStatus)
	}
	if m.uploaded_at != nil {
		fields = append(fields, uploadfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadfile.FieldOwnerID:
		return m.OwnerID()
	case uploadfile.FieldFilename:
		return m.Filename()
	case uploadfile.FieldFilePath:
		return m.FilePath()
	case uploadfile.FieldFileExt:
		return m.FileExt()
	case uploadfile.FieldFormat:
		return m.Format()
	case uploadfile.FieldFileSize:
		return m.FileSize()
	case uploadfile.FieldStatus:
		return m.Status()
	case uploadfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadfile.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case uploadfile.FieldFilename:
		return m.OldFilename(ctx)
	case uploadfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case uploadfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case uploadfile.FieldFormat:
		return m.OldFormat(ctx)
	case uploadfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case uploadfile.FieldStatus:
		return m.OldStatus(ctx)
	case uploadfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadfile.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case uploadfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case uploadfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case uploadfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case uploadfile.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case uploadfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case uploadfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, uploadfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown UploadFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UploadFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadFileMutation) ResetField(name string) error {
	switch name {
	case uploadfile.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case uploadfile.FieldFilename:
		m.ResetFilename()
		return nil
	case uploadfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case uploadfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case uploadfile.FieldFormat:
		m.ResetFormat()
		return nil
	case uploadfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case uploadfile.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.records != nil {
		edges = append(edges, uploadfile.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadfile.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecords != nil {
		edges = append(edges, uploadfile.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case uploadfile.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecords {
		edges = append(edges, uploadfile.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadFileMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadfile.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UploadFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadFileMutation) ResetEdge(name string) error {
	switch name {
	case uploadfile.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown UploadFile edge %s", name)
}
