package specification

// ViewKey identifies one of the fixed technical views of a shoe article.
type ViewKey string

const (
	ViewLateral ViewKey = "lateral"
	ViewMedial  ViewKey = "medial"
	ViewToe     ViewKey = "toe"
	ViewHeel    ViewKey = "heel"
	ViewTop     ViewKey = "top"
	ViewSole    ViewKey = "sole"
	ViewInsole  ViewKey = "insole"
	ViewTongue  ViewKey = "tongue"
)

// viewCatalog is the fixed, ordered set of view slots. The position of a
// view in this slice is its stable index; placeholders and default view
// selection depend on this order staying put.
var viewCatalog = []ViewKey{
	ViewLateral,
	ViewMedial,
	ViewToe,
	ViewHeel,
	ViewTop,
	ViewSole,
	ViewInsole,
	ViewTongue,
}

var viewLabels = map[ViewKey]string{
	ViewLateral: "Lateral side",
	ViewMedial:  "Medial side",
	ViewToe:     "Toe",
	ViewHeel:    "Heel",
	ViewTop:     "Top",
	ViewSole:    "Outsole",
	ViewInsole:  "Insole",
	ViewTongue:  "Tongue",
}

// Views returns the catalog in display order.
func Views() []ViewKey {
	views := make([]ViewKey, len(viewCatalog))
	copy(views, viewCatalog)
	return views
}

// String returns the raw key.
func (v ViewKey) String() string {
	return string(v)
}

// IsValid reports whether the key names a catalog slot.
func (v ViewKey) IsValid() bool {
	return v.Index() >= 0
}

// Index returns the stable position of the view in the catalog, or -1.
func (v ViewKey) Index() int {
	for i, key := range viewCatalog {
		if key == v {
			return i
		}
	}
	return -1
}

// Label returns the human-readable name of the view.
func (v ViewKey) Label() string {
	return viewLabels[v]
}

// ActiveView resolves which view to display. Precedence: an explicitly
// requested view, the previously active view, the first catalog view that
// has persisted media, the first catalog view.
func ActiveView(requested, previous ViewKey, persisted []ViewKey) ViewKey {
	if requested.IsValid() {
		return requested
	}
	if previous.IsValid() {
		return previous
	}
	persistedSet := make(map[ViewKey]bool, len(persisted))
	for _, v := range persisted {
		persistedSet[v] = true
	}
	for _, v := range viewCatalog {
		if persistedSet[v] {
			return v
		}
	}
	return viewCatalog[0]
}
