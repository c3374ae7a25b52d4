package expect

// TestingT is the subset of *testing.T used to abort a test when
// a chain concludes with failures.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}
