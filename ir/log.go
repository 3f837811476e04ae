package ir

// Errorf is a diagnostic hook a host can set during init(), mirroring
// executor.Errorf, without this package committing to a logging
// library. No code path in package ir calls errorf, so setting it has
// no effect; decode errors reach callers only as returned errors.
var Errorf func(f string, args ...any)

func errorf(f string, args ...any) {
	if Errorf != nil {
		Errorf(f, args...)
	}
}
