package hoplite

import "errors"

// Failures returned by form generation. They are terminal for a single
// request and are matched with errors.Is.
var (
	// ErrIllegalForm marks a category combination that no verb can fill.
	ErrIllegalForm = errors.New("illegal form")
	// ErrBlankPrincipalPart marks a cell whose principal part does not exist.
	ErrBlankPrincipalPart = errors.New("blank principal part")
	// ErrDeponent marks a voice that the verb's deponency excludes.
	ErrDeponent = errors.New("voice not available for deponent verb")
	// ErrUnexpectedPrincipalPartEnding marks a principal part with no recognized ending.
	ErrUnexpectedPrincipalPartEnding = errors.New("unexpected principal part ending")
	// ErrInternal marks an ending table or alternate that yielded nothing.
	ErrInternal = errors.New("internal error")
	// ErrDoesNotExist is reserved for attestation filters layered over the core.
	ErrDoesNotExist = errors.New("form does not exist")
	// ErrNotAvailableInUnit is reserved for pedagogical unit filters.
	ErrNotAvailableInUnit = errors.New("form not available in unit")
	// ErrNotImplemented is reserved for filters over unsupported cells.
	ErrNotImplemented = errors.New("not implemented")
	// ErrPrincipalPartCount marks a verb record without exactly six principal parts.
	ErrPrincipalPartCount = errors.New("verb must have exactly 6 principal parts")
)

// Kind returns a short name for the failure class of err, or "" when err
// is nil or not one of the failures above.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIllegalForm):
		return "IllegalForm"
	case errors.Is(err, ErrBlankPrincipalPart):
		return "BlankPrincipalPart"
	case errors.Is(err, ErrDeponent):
		return "Deponent"
	case errors.Is(err, ErrUnexpectedPrincipalPartEnding):
		return "UnexpectedPrincipalPartEnding"
	case errors.Is(err, ErrInternal):
		return "InternalError"
	case errors.Is(err, ErrDoesNotExist):
		return "DoesNotExist"
	case errors.Is(err, ErrNotAvailableInUnit):
		return "NotAvailableInUnit"
	case errors.Is(err, ErrNotImplemented):
		return "NotImplemented"
	case errors.Is(err, ErrPrincipalPartCount):
		return "PrincipalPartCount"
	}
	return ""
}
