package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
)

type fakeJobs struct {
	mu       sync.Mutex
	job      *entity.ConversionJob
	progress []int
	status   constants.JobStatus
	errMsg   *string
}

func (f *fakeJobs) Get(_ context.Context, _ uuid.UUID) (*entity.ConversionJob, error) {
	return f.job, nil
}

func (f *fakeJobs) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = constants.JobStatusProcessing
	return nil
}

func (f *fakeJobs) SetProgress(_ context.Context, _ uuid.UUID, processed int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, processed)
	return nil
}

func (f *fakeJobs) Finish(_ context.Context, _ uuid.UUID, status constants.JobStatus, errMsg *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.errMsg = errMsg
	return nil
}

type fakeFiles struct {
	mu       sync.Mutex
	files    map[uuid.UUID]*entity.UploadFile
	statuses map[uuid.UUID]string
}

func newFakeFiles(ids ...uuid.UUID) *fakeFiles {
	f := &fakeFiles{files: map[uuid.UUID]*entity.UploadFile{}, statuses: map[uuid.UUID]string{}}
	for _, id := range ids {
		f.files[id] = &entity.UploadFile{ID: id, FilePath: "/data/" + id.String() + ".jpg"}
	}
	return f
}

func (f *fakeFiles) Get(_ context.Context, id uuid.UUID) (*entity.UploadFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, errors.New("file not found")
	}
	return file, nil
}

func (f *fakeFiles) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[id] = status
	return nil
}

type fakeRecords struct {
	mu      sync.Mutex
	records []entity.ExtractedRecord
}

func (f *fakeRecords) CreateBatch(_ context.Context, records []entity.ExtractedRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, records...)
	return nil
}

// scriptedTranscriber returns a canned result per call, in order.
type scriptedTranscriber struct {
	mu      sync.Mutex
	results []entity.Transcription
	errs    []error
	calls   int
	onCall  func(n int)
}

func (s *scriptedTranscriber) Transcribe(_ context.Context, _ string, _ string) (entity.Transcription, error) {
	s.mu.Lock()
	n := s.calls
	s.calls++
	s.mu.Unlock()
	if s.onCall != nil {
		s.onCall(n)
	}
	if n < len(s.errs) && s.errs[n] != nil {
		return entity.Transcription{}, s.errs[n]
	}
	return s.results[n], nil
}

const coinBankText = `ポケットモンスター コインバンク ピカチュウ
商品コード：ST-03CB
JANコード：4970381804220
希望小売価格：1,100円（税込）

ポケットモンスター コインバンク イーブイ
商品コード：ST-08CB
JANコード：4970381804213
希望小売価格：1,100円（税込）`

func newJob(fileIDs ...uuid.UUID) *entity.ConversionJob {
	return &entity.ConversionJob{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		FileIDs:    fileIDs,
		TotalFiles: len(fileIDs),
		Status:     constants.JobStatusPending,
	}
}

func newProcessor(t *testing.T, tr *scriptedTranscriber, jobs *fakeJobs, files *fakeFiles, records *fakeRecords) *Processor {
	t.Helper()
	return NewProcessor(tr, identity.SeedTable(), jobs, files, records, "ja", nil)
}

func TestProcessJobSegmentsMultiProductFile(t *testing.T) {
	fileID := uuid.New()
	jobs := &fakeJobs{job: newJob(fileID)}
	files := newFakeFiles(fileID)
	records := &fakeRecords{}
	tr := &scriptedTranscriber{results: []entity.Transcription{
		{Text: coinBankText, Confidence: 90, Method: "openai_vision"},
	}}

	err := newProcessor(t, tr, jobs, files, records).ProcessJob(context.Background(), jobs.job.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusCompleted, jobs.status)
	assert.Equal(t, []int{1}, jobs.progress)
	assert.Equal(t, entity.FileStatusCompleted, files.statuses[fileID])

	require.Len(t, records.records, 2)
	for _, rec := range records.records {
		assert.True(t, rec.IsMultiProduct)
		assert.Equal(t, 2, rec.TotalProductsInFile)
		assert.Equal(t, constants.RecordStatusExtracted, rec.Status)
	}
	require.NotNil(t, records.records[0].Fields.JANCode)
	assert.Equal(t, "4970381804220", *records.records[0].Fields.JANCode)
	require.NotNil(t, records.records[1].Fields.JANCode)
	// the sheet prints ST-08CB with a wrong barcode; the code table wins
	assert.Equal(t, "4970381804237", *records.records[1].Fields.JANCode)
}

func TestProcessJobPrefersStructuredProducts(t *testing.T) {
	fileID := uuid.New()
	jobs := &fakeJobs{job: newJob(fileID)}
	files := newFakeFiles(fileID)
	records := &fakeRecords{}
	name := "モンコレ ピカチュウ"
	tr := &scriptedTranscriber{results: []entity.Transcription{
		{
			Text:       "some raw text",
			Confidence: 95,
			Products:   []entity.RecordFields{{ProductName: &name}},
		},
	}}

	err := newProcessor(t, tr, jobs, files, records).ProcessJob(context.Background(), jobs.job.ID)
	require.NoError(t, err)

	require.Len(t, records.records, 1)
	require.NotNil(t, records.records[0].Fields.ProductName)
	assert.Equal(t, name, *records.records[0].Fields.ProductName)
	assert.False(t, records.records[0].IsMultiProduct)
}

func TestProcessJobIsolatesFileFailures(t *testing.T) {
	badID, goodID := uuid.New(), uuid.New()
	jobs := &fakeJobs{job: newJob(badID, goodID)}
	files := newFakeFiles(badID, goodID)
	records := &fakeRecords{}
	tr := &scriptedTranscriber{
		errs: []error{errors.New("api status 429: rate limit"), nil},
		results: []entity.Transcription{
			{},
			{Text: "商品名：モンコレ イーブイ\n希望小売価格：550円", Confidence: 90},
		},
	}

	err := newProcessor(t, tr, jobs, files, records).ProcessJob(context.Background(), jobs.job.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusCompleted, jobs.status)
	assert.Equal(t, []int{1, 2}, jobs.progress)
	assert.Equal(t, entity.FileStatusFailed, files.statuses[badID])
	assert.Equal(t, entity.FileStatusCompleted, files.statuses[goodID])

	require.Len(t, records.records, 2)
	failure := records.records[0]
	assert.Equal(t, constants.RecordStatusPendingRetry, failure.Status, "rate limits are retryable")
	require.NotNil(t, failure.ErrorMessage)
	assert.Contains(t, *failure.ErrorMessage, "429")
}

func TestProcessJobAllFilesFailed(t *testing.T) {
	fileID := uuid.New()
	jobs := &fakeJobs{job: newJob(fileID)}
	files := newFakeFiles(fileID)
	records := &fakeRecords{}
	tr := &scriptedTranscriber{errs: []error{errors.New("api status 401: invalid api key")}}

	err := newProcessor(t, tr, jobs, files, records).ProcessJob(context.Background(), jobs.job.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusFailed, jobs.status)
	require.Len(t, records.records, 1)
	assert.Equal(t, constants.RecordStatusFailed, records.records[0].Status, "auth errors are permanent")
}

func TestProcessJobCancelledBetweenFiles(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	jobs := &fakeJobs{job: newJob(first, second)}
	files := newFakeFiles(first, second)
	records := &fakeRecords{}

	ctx, cancel := context.WithCancel(context.Background())
	tr := &scriptedTranscriber{
		results: []entity.Transcription{
			{Text: "商品名：モンコレ ゼニガメ", Confidence: 90},
			{Text: "unreachable", Confidence: 90},
		},
		onCall: func(n int) {
			if n == 0 {
				cancel()
			}
		},
	}

	err := newProcessor(t, tr, jobs, files, records).ProcessJob(ctx, jobs.job.ID)
	assert.ErrorIs(t, err, common.ErrJobCancelled)
	assert.Equal(t, constants.JobStatusCancelled, jobs.status)
	assert.Equal(t, 1, tr.calls, "second file never transcribed")
	assert.Len(t, records.records, 1, "first file's records were kept")
}
