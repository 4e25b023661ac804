package render

// Korean display labels for the order option codes. Both the canonical codes
// and the legacy Korean form values resolve to the same label; anything else
// passes through unchanged so the lookup never fails.
var printTypeLabels = map[string]string{
	"흑백":          "흑백",
	"black_white": "흑백",
	"잉크칼라":        "잉크 칼라",
	"ink_color":   "잉크 칼라",
	"레이져칼라":       "레이저 칼라",
	"laser_color": "레이저 칼라",
}

var bindingLabels = map[string]string{
	"무선":      "무선",
	"perfect": "무선",
	"ring":    "링",
	"링":       "링",
	"saddle":  "중철",
	"중철":      "중철",
}

// ProductName derives the human-readable product description shown on the
// quote document. Empty inputs fall back to the shop's default offering.
func ProductName(printType, printMethod, bindingType string) string {
	if printType == "" {
		printType = "흑백"
	}
	if bindingType == "" {
		bindingType = "무선"
	}

	typeLabel, ok := printTypeLabels[printType]
	if !ok {
		typeLabel = printType
	}
	bindingLabel, ok := bindingLabels[bindingType]
	if !ok {
		bindingLabel = bindingType
	}

	methodLabel := "단면"
	if printMethod == "double" || printMethod == "양면" {
		methodLabel = "양면"
	}

	return typeLabel + " " + methodLabel + " " + bindingLabel + "제본"
}
