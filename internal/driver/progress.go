package driver

// ProgressStatus is the state of one file in a batch.
type ProgressStatus int

const (
	ProgressQueued ProgressStatus = iota
	ProgressRunning
	ProgressDone
	ProgressFailed // file could not be loaded or had failing expressions
)

func (s ProgressStatus) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressRunning:
		return "running"
	case ProgressDone:
		return "done"
	case ProgressFailed:
		return "failed"
	}
	return "unknown"
}

// ProgressEvent describes a state change of one batch file.
type ProgressEvent struct {
	Index  int // position in the batch
	Total  int
	Path   string
	Status ProgressStatus
	Exprs  int // set on Done/Failed
	Failed int
}

// ProgressSink receives batch events. It is called from worker goroutines
// and must be safe for concurrent use.
type ProgressSink func(ProgressEvent)

func (s ProgressSink) emit(ev ProgressEvent) {
	if s != nil {
		s(ev)
	}
}
