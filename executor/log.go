package executor

// Errorf is a diagnostic hook a host can set during init() to route
// executor-level diagnostics (contract violations) into
// its own logger without this package committing to one, mirroring
// ir.Errorf.
var Errorf func(f string, args ...any)

func errorf(f string, args ...any) {
	if Errorf != nil {
		Errorf(f, args...)
	}
}
