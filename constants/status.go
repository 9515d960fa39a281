package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // fields extracted and stored
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
