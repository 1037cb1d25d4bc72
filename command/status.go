package command

// Status classifies the outcome of a dispatched operation.
type Status uint8

const (
	// StatusOK reports a completed operation.
	StatusOK Status = iota

	// StatusNotFound reports an operation against an id with no live
	// surface.
	StatusNotFound

	// StatusAlreadyExists reports a create against an id that is live.
	StatusAlreadyExists

	// StatusInvalidArgument reports a malformed or unsupported argument,
	// including decode failures and unknown operations.
	StatusInvalidArgument
)

var statusNames = [...]string{
	StatusOK:              "ok",
	StatusNotFound:        "not_found",
	StatusAlreadyExists:   "already_exists",
	StatusInvalidArgument: "invalid_argument",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}
