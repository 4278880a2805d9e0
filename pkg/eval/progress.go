package eval

// ProgressEventType identifies a stage in the evaluation run.
type ProgressEventType string

const (
	EventEvalStart     ProgressEventType = "evalStart"
	EventModelStart    ProgressEventType = "modelStart"
	EventModelInvoking ProgressEventType = "modelInvoking"
	EventModelComplete ProgressEventType = "modelComplete"
	EventEvalComplete  ProgressEventType = "evalComplete"
)

// ProgressEvent is delivered to the caller's callback as the run advances.
// Result is set for per-model events.
type ProgressEvent struct {
	Type    ProgressEventType
	Message string
	Result  *ModelResult
}

// ProgressCallback receives progress events during an evaluation run.
type ProgressCallback func(event ProgressEvent)

// NoopProgressCallback discards all progress events.
func NoopProgressCallback(event ProgressEvent) {}
