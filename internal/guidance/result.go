package guidance

import "fmt"

// Kind classifies a failed exchange.
type Kind int

// Failure kinds.
const (
	// KindUnknownMode means the mode identifier is outside the closed set.
	KindUnknownMode Kind = iota + 1
	// KindGeneration means the generator could not produce a response.
	KindGeneration
)

// Outcome labels, used in logs and metrics.
const (
	OutcomeSuccess           = "success"
	OutcomeUnknownMode       = "unknown_mode"
	OutcomeGenerationFailure = "generation_failure"
)

// String returns the outcome label of k.
func (k Kind) String() string {
	switch k {
	case KindUnknownMode:
		return OutcomeUnknownMode
	case KindGeneration:
		return OutcomeGenerationFailure
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Failure describes why an exchange produced no guidance.
// Message is ready to show to the end user.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the user-facing message.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of one exchange: either Text (success) or Failure.
type Result struct {
	Text    string
	Failure *Failure
}

// OK reports whether the exchange succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Outcome returns OutcomeSuccess or the failure kind label.
func (r Result) Outcome() string {
	if r.OK() {
		return OutcomeSuccess
	}
	return r.Failure.Kind.String()
}

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Failure
}

// Success returns a successful Result holding text unmodified.
func Success(text string) Result {
	return Result{Text: text}
}

// unknownMode builds the failure for a mode outside the closed set.
func unknownMode(id string, err error) Result {
	return Result{Failure: &Failure{
		Kind:    KindUnknownMode,
		Message: fmt.Sprintf("Unknown journaling mode %q.", id),
		Err:     err,
	}}
}

// generationFailed builds the failure for a generator error.
func generationFailed(err error) Result {
	return Result{Failure: &Failure{
		Kind:    KindGeneration,
		Message: "An API error occurred: " + err.Error(),
		Err:     err,
	}}
}
