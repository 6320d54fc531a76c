package channel

// Kind classifies a destination string.
type Kind int

const (
	KindDisabled Kind = iota
	KindDiagnostic
	KindFile
)

// Destination is a parsed destination string.
type Destination struct {
	Kind Kind
	Path string
}

// ParseDestination classifies s: empty disables the stream, "-" selects the
// diagnostic stream and anything else is a file path.
func ParseDestination(s string) Destination {
	switch s {
	case "":
		return Destination{Kind: KindDisabled}
	case DiagnosticMarker:
		return Destination{Kind: KindDiagnostic}
	}
	return Destination{Kind: KindFile, Path: s}
}

func (d Destination) String() string {
	switch d.Kind {
	case KindDiagnostic:
		return "diagnostic stream"
	case KindFile:
		return d.Path
	}
	return "disabled"
}
