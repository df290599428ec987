package output

// LayoutDescriptor describes how a layout should be chosen. This is
// typically built from a page.
type LayoutDescriptor struct {
	Kind   string
	Layout string
}
