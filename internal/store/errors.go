package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no account matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrNotFound is returned when a category, document, folder or registre
	// does not exist for the requesting user.
	ErrNotFound = errors.New("record was not found")

	// ErrDuplicateName is returned when a category or folder with the same
	// name already exists for the user.
	ErrDuplicateName = errors.New("name already exists")

	// ErrInvalidReference is returned when a row references a parent that
	// does not exist (foreign key violation).
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Local secret store errors.
var (
	// ErrSecretUnreadable is returned when a stored secret exists but cannot
	// be decrypted with this device's key.
	ErrSecretUnreadable = errors.New("secret cannot be decrypted")

	// ErrEmptySecretKey is returned for operations on an empty key.
	ErrEmptySecretKey = errors.New("empty secret key")
)

// Object store errors.
var (
	// ErrObjectStore wraps failures of the S3-compatible object store.
	ErrObjectStore = errors.New("object store error")
)
