package dom

// charDataString returns the current string value of any
// CharacterData-bearing node, regardless of its concrete node type.
func charDataString(n *node) string {
	switch v := n.value.(type) {
	case *text:
		return v.Data()
	case *comment:
		return v.text.Data()
	case *cdataSection:
		return v.text.Data()
	case *procinst:
		return v.Inst()
	case *declaration:
		return v.Inst()
	default:
		return ""
	}
}

// withCharDataMutation runs mutate, a raw (event-unaware) character
// data mutator, and synthesizes DOMCharacterDataModified on n if the
// node's string value actually changed.
func withCharDataMutation(n *node, mutate func() error) error {
	prev := charDataString(n)
	if err := mutate(); err != nil {
		return err
	}
	dispatchCharacterDataModified(n, prev, charDataString(n))
	return nil
}
