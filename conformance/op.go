package conformance

// Op is one randomly drawn operation.
type Op uint8

const (
	OpSet Op = iota
	OpClear
	OpFlipAll
	OpResetAll
	OpSetAll
	OpToggle
	OpShiftRight
	OpShiftLeft
	OpOrShiftedRight
	OpXorShiftedLeft
	OpAndShiftedRight

	numOps
)

var opNames = [numOps]string{
	OpSet:             "set",
	OpClear:           "clear",
	OpFlipAll:         "flip-all",
	OpResetAll:        "reset-all",
	OpSetAll:          "set-all",
	OpToggle:          "toggle",
	OpShiftRight:      "shift-right",
	OpShiftLeft:       "shift-left",
	OpOrShiftedRight:  "or-shifted-right",
	OpXorShiftedLeft:  "xor-shifted-left",
	OpAndShiftedRight: "and-shifted-right",
}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return "unknown"
}
