package constants

// RecordStatus is the canonical status for rows in extracted_record.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	RecordStatusExtracted    RecordStatus = "extracted"     // extraction finished, confidence acceptable
	RecordStatusNeedsReview  RecordStatus = "needs_review"  // extracted but below the confidence threshold
	RecordStatusValidated    RecordStatus = "validated"     // human-confirmed; never overwritten by the pipeline
	RecordStatusFailed       RecordStatus = "failed"        // terminal extraction failure
	RecordStatusPendingRetry RecordStatus = "pending_retry" // transient failure (quota, network), retryable
)

// JobStatus is the canonical status for rows in conversion_job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// NeedsReviewThreshold is the confidence score (0..100) below which an
// extracted record is flagged for manual review.
const NeedsReviewThreshold float32 = 70

// RecordStatuses lists every valid RecordStatus value, for DB-level validation.
var RecordStatuses = []string{
	string(RecordStatusExtracted),
	string(RecordStatusNeedsReview),
	string(RecordStatusValidated),
	string(RecordStatusFailed),
	string(RecordStatusPendingRetry),
}

// JobStatuses lists every valid JobStatus value, for DB-level validation.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// FileStatuses lists every valid upload-file status value.
var FileStatuses = []string{"uploaded", "processing", "completed", "failed"}
