package gate

// Kind tags the outcome of an Auth Service call.
type Kind int

const (
	// KindOK carries a value.
	KindOK Kind = iota
	// KindAbsent means the call succeeded and there is nothing, e.g. no
	// current session.
	KindAbsent
	// KindRejected means the service refused the request (bad credentials,
	// email taken). Message is shown to the user verbatim.
	KindRejected
	// KindUnreachable means the service could not be contacted.
	KindUnreachable
	// KindFailed covers any other failure.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindAbsent:
		return "absent"
	case KindRejected:
		return "rejected"
	case KindUnreachable:
		return "unreachable"
	default:
		return "failed"
	}
}

// Result is the tagged outcome returned across the Auth Service boundary.
// Callers switch on Kind rather than probing Value.
type Result[T any] struct {
	Value   T
	Kind    Kind
	Message string
	Err     error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Kind: KindOK}
}

// Absent reports a successful call with no value.
func Absent[T any]() Result[T] {
	return Result[T]{Kind: KindAbsent}
}

// Fail reports a failure of the given kind. message is user-facing.
func Fail[T any](kind Kind, message string, err error) Result[T] {
	return Result[T]{Kind: kind, Message: message, Err: err}
}

// Session identifies the principal of an established remote session.
type Session struct {
	UserID string
}

// Done is the value of results that carry nothing.
type Done struct{}
