package driver

// Options controls how expressions are lexed, evaluated and reported.
type Options struct {
	MaxDiagnostics int    // per file; 0 = unlimited
	MaxTokenLen    uint32 // LEX1002 threshold; 0 = off
	Cache          *ResultCache
	Timings        bool // attach an OBS6001 diagnostic per file

	// EvalBatch only.
	Jobs     int // 0 = GOMAXPROCS
	Progress ProgressSink
}
