package extract

// UnitKind is the extraction route chosen for a page or image. The text/model
// branch is a tagged variant so the threshold rule and its consequences live
// in one auditable place (Extractor.Extract).
type UnitKind int

const (
	// TextNative units carry raw text recovered without a model call.
	TextNative UnitKind = iota
	// ModelRouted units carry an image destined for the vision model.
	ModelRouted
)

func (k UnitKind) String() string {
	if k == TextNative {
		return "text-native"
	}
	return "model-routed"
}

// Unit is one page (multi-page PDF) or one whole image awaiting parsing.
type Unit struct {
	Page      int // zero-based page index within the source file
	Kind      UnitKind
	Text      string // TextNative only
	Image     []byte // ModelRouted only
	MediaType string // ModelRouted only
}
