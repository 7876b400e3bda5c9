package pipeline

// State tracks which phase the controller last completed and how it ended.
type State uint8

const (
	// StateIdle means no phase has run since the last source load.
	StateIdle State = iota
	// StateLexedOk means the lexical phase ran and produced no errors.
	StateLexedOk
	// StateLexedFail means the lexical phase ran and produced errors.
	StateLexedFail
	// StateParsedOk means the syntax phase ran and produced no errors.
	StateParsedOk
	// StateParsedFail means the syntax phase ran and produced errors.
	StateParsedFail
	// StateValidatedOk means the semantic phase ran and produced no errors.
	StateValidatedOk
	// StateValidatedFail means the semantic phase ran and produced errors.
	StateValidatedFail
)

var stateNames = [...]string{
	StateIdle:          "idle",
	StateLexedOk:       "lexed-ok",
	StateLexedFail:     "lexed-fail",
	StateParsedOk:      "parsed-ok",
	StateParsedFail:    "parsed-fail",
	StateValidatedOk:   "validated-ok",
	StateValidatedFail: "validated-fail",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// CanRunSyntax reports whether the syntax phase is allowed to start.
func (s State) CanRunSyntax() bool {
	return s == StateLexedOk
}

// CanRunSemantic reports whether the semantic phase is allowed to start.
func (s State) CanRunSemantic() bool {
	return s == StateParsedOk
}
