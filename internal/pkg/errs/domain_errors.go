package errs

// Error classes shared by every layer. Domain and usecase errors are marked
// with exactly one of these so the handler layer can map them to a status
// without knowing each individual error.
var (
	ErrNotFound        = New("not found")
	ErrForbidden       = New("forbidden")
	ErrInvalidArgument = New("invalid argument")
	ErrInvalidState    = New("invalid state")
	ErrAlreadyDone     = New("already done")

	ErrDatabaseOperationFailed = New("database operation failed")
)

// Class builds a sentinel error that carries one of the classes above.
func Class(msg string, class error) error {
	return Mark(New(msg), class)
}

// ClassOf returns the taxonomy class of err, or nil when err is unclassified.
func ClassOf(err error) error {
	for _, class := range []error{ErrNotFound, ErrForbidden, ErrInvalidArgument, ErrInvalidState, ErrAlreadyDone} {
		if Is(err, class) {
			return class
		}
	}
	return nil
}
