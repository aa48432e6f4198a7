package types

// Component is a rich text chat component. Only the data shape is defined
// for now; its wire encoding is not implemented yet, so the codec layer
// rejects it explicitly instead of guessing at bytes.
type Component struct {
	Text  string
	Extra []Component
}
