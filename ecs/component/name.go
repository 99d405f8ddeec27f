package component

// Name is a human-readable label shown by editor lists.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
