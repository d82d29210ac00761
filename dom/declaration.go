package dom

import (
	"bytes"

	xml "github.com/andaru/flexml"
)

// Declaration is out-of-band metadata for an XML implementation, such
// as a reader of the document.
type Declaration interface {
	Node
	CharacterData
	Target() string
}

type declaration struct {
	xml.ProcInst
}

type declarationNode struct {
	*declaration
	*node
}

func (d *declaration) nodeType() NodeType { return NodeTypeDeclaration }
func (d *declaration) Target() string     { return d.ProcInst.Target }
func (d *declaration) Empty() bool        { return len(d.ProcInst.Inst) == 0 }
func (d *declaration) Data() string       { return string(d.ProcInst.Inst) }
func (d *declaration) Inst() string       { return string(d.ProcInst.Inst) }

func (d *declaration) SetData(arg string) error {
	d.ProcInst.Inst = []byte(arg)
	return nil
}

func (d *declaration) AppendData(arg string) error {
	d.ProcInst.Inst = append(d.ProcInst.Inst, []byte(arg)...)
	return nil
}

func (d *declaration) InsertData(offset int, arg string) error {
	if offset < 0 || offset > len(d.ProcInst.Inst) {
		return ErrIndexSize
	}
	d.ProcInst.Inst = append(d.ProcInst.Inst[:offset], append([]byte(arg), d.ProcInst.Inst[offset:]...)...)
	return nil
}

func (d *declaration) DeleteData(offset, count int) error {
	if count < 0 || offset+count > len(d.ProcInst.Inst) {
		return ErrIndexSize
	}
	d.ProcInst.Inst = append(d.ProcInst.Inst[:offset], d.ProcInst.Inst[offset+count:]...)
	return nil
}

func (d *declaration) ReplaceData(offset, count int, arg string) error {
	if count < 0 || offset+count > len(d.ProcInst.Inst) || len(arg) < count {
		return ErrIndexSize
	}
	copy(d.ProcInst.Inst[offset:], arg[:count])
	return nil
}

func (d *declaration) SubstringData(offset, count int) (string, error) {
	if offset < 0 || count < 0 || offset+count > len(d.ProcInst.Inst) {
		return "", ErrIndexSize
	}
	return string(d.ProcInst.Inst[offset : offset+count]), nil
}

func (d *declaration) SetValue(value string) error { return d.SetData(value) }

func (d declarationNode) SetValue(v string) error { return d.SetData(v) }

func (d declarationNode) SetData(arg string) error {
	return withCharDataMutation(d.node, func() error { return d.declaration.SetData(arg) })
}

func (d declarationNode) AppendData(arg string) error {
	return withCharDataMutation(d.node, func() error { return d.declaration.AppendData(arg) })
}

func (d declarationNode) InsertData(offset int, arg string) error {
	return withCharDataMutation(d.node, func() error { return d.declaration.InsertData(offset, arg) })
}

func (d declarationNode) DeleteData(offset, count int) error {
	return withCharDataMutation(d.node, func() error { return d.declaration.DeleteData(offset, count) })
}

func (d declarationNode) ReplaceData(offset, count int, arg string) error {
	return withCharDataMutation(d.node, func() error { return d.declaration.ReplaceData(offset, count, arg) })
}

func newDeclaration(pi xml.ProcInst) *node {
	decl := &declaration{ProcInst: pi.Copy()}
	n := &node{value: decl}
	pairs := kvPairs(decl.ProcInst.Inst)
	for i := 0; i < len(pairs)/2; i++ {
		k, v := pairs[i*2], pairs[(i*2)+1]
		appendAttribute(newAttribute(xml.Attr{Name: xml.Name{Local: k}, Value: v}), n)
	}
	return n
}

// kvPairs parses the `param="..."` or `param='...'` value out of the provided
// string, returning a slice of key followed by value pairs for all successfully
// parsed entries.
func kvPairs(input []byte) (kv []string) {
	for _, field := range bytes.Fields(input) {
		idx := bytes.IndexRune(field, '=')
		if idx == -1 {
			continue
		}
		k, v := field[:idx], field[idx+1:]
		if len(v) == 0 || (v[0] != '\'' && v[0] != '"') {
			continue
		} else if idx = bytes.IndexRune(v[1:], rune(v[0])); idx != -1 {
			kv = append(kv, string(k), string(v[1:idx+1]))
		}
	}
	return
}

var (
	_ Declaration = declarationNode{}
	_ Declaration = &declarationNode{}
)
