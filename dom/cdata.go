package dom

import xml "github.com/andaru/flexml"

// CDATASection inherits from CharacterData and represents the escaped
// text content of a "<![CDATA[...]]>" section. CDATA sections are
// used to escape blocks of text that would otherwise be recognized as
// markup; aside from that parse-time distinction they behave exactly
// like Text nodes.
type CDATASection interface {
	Node
	CharacterData

	// SplitText splits this node into two CDATASection nodes at
	// offset, keeping the first offset bytes in this node and moving
	// the remainder into a new node inserted as this node's next
	// sibling. Returns the new node.
	SplitText(offset int) (CDATASection, error)
}

type cdataSection struct{ text }

type cdataSectionNode struct {
	*cdataSection
	*node
}

func (c cdataSection) nodeType() NodeType { return NodeTypeCDATASection }

// CreateCDATASection returns a new CDATA section node using the
// provided character data.
func CreateCDATASection(cd xml.CharData) CDATASection {
	return newCDATASection(cd.Copy()).asCDATASection()
}

func newCDATASection(cd xml.CharData) *node {
	return &node{value: &cdataSection{text{value: cd}}}
}

func (n *node) asCDATASection() cdataSectionNode {
	return cdataSectionNode{n.value.(*cdataSection), n}
}

// The methods below shadow the promoted *text mutators so that every
// character-data change on a CDATASection synthesizes
// DOMCharacterDataModified exactly once.

func (c cdataSectionNode) SetValue(v string) error { return c.SetData(v) }

func (c cdataSectionNode) SetData(arg string) error {
	return withCharDataMutation(c.node, func() error { return c.cdataSection.text.SetData(arg) })
}

func (c cdataSectionNode) AppendData(arg string) error {
	return withCharDataMutation(c.node, func() error { return c.cdataSection.text.AppendData(arg) })
}

func (c cdataSectionNode) InsertData(offset int, arg string) error {
	return withCharDataMutation(c.node, func() error { return c.cdataSection.text.InsertData(offset, arg) })
}

func (c cdataSectionNode) DeleteData(offset, count int) error {
	return withCharDataMutation(c.node, func() error { return c.cdataSection.text.DeleteData(offset, count) })
}

func (c cdataSectionNode) ReplaceData(offset, count int, arg string) error {
	return withCharDataMutation(c.node, func() error { return c.cdataSection.text.ReplaceData(offset, count, arg) })
}

// SplitText implements CDATASection.SplitText, grounded on the same
// offset/length bookkeeping as substringData: the tail from offset
// onward becomes a new sibling node, and this node's data is
// truncated to the head.
func (c cdataSectionNode) SplitText(offset int) (CDATASection, error) {
	data := string(c.cdataSection.text.value)
	if offset < 0 || offset > len(data) {
		return nil, ErrIndexSize
	}
	tail := data[offset:]
	newNode := newCDATASection(xml.CharData(tail))
	if err := c.DeleteData(offset, len(data)-offset); err != nil {
		return nil, err
	}
	if parent := c.node.parent; parent != nil {
		if err := parent.InsertChildAfter(newNode, c.node); err != nil {
			return nil, err
		}
	}
	return newNode.asCDATASection(), nil
}

var (
	_ CDATASection = cdataSectionNode{}
	_ CDATASection = &cdataSectionNode{}
)
