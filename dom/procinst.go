package dom

import (
	xml "github.com/andaru/flexml"
)

// ProcessingInstruction is out-of-band metadata for an XML implementation, such
// as a reader of the document.
type ProcessingInstruction interface {
	Node
	CharacterData
	Target() string
}

type procinst struct {
	xml.ProcInst
}

type procinstNode struct {
	*procinst
	*node
}

func (pi *procinst) nodeType() NodeType { return NodeTypeProcessingInstruction }
func (pi *procinst) Target() string     { return pi.ProcInst.Target }
func (pi *procinst) Empty() bool        { return len(pi.ProcInst.Inst) == 0 }
func (pi *procinst) Data() string       { return string(pi.ProcInst.Inst) }
func (pi *procinst) Inst() string       { return string(pi.ProcInst.Inst) }

func (pi *procinst) SetData(arg string) error {
	pi.ProcInst.Inst = []byte(arg)
	return nil
}

func (pi *procinst) AppendData(arg string) error {
	pi.ProcInst.Inst = append(pi.ProcInst.Inst, []byte(arg)...)
	return nil
}

func (pi *procinst) InsertData(offset int, arg string) error {
	if offset < 0 || offset > len(pi.ProcInst.Inst) {
		return ErrIndexSize
	}
	pi.ProcInst.Inst = append(pi.ProcInst.Inst[:offset], append([]byte(arg), pi.ProcInst.Inst[offset:]...)...)
	return nil
}

func (pi *procinst) DeleteData(offset, count int) error {
	if count < 0 || offset+count > len(pi.ProcInst.Inst) {
		return ErrIndexSize
	}
	pi.ProcInst.Inst = append(pi.ProcInst.Inst[:offset], pi.ProcInst.Inst[offset+count:]...)
	return nil
}

func (pi *procinst) ReplaceData(offset, count int, arg string) error {
	if count < 0 || offset+count > len(pi.ProcInst.Inst) || len(arg) < count {
		return ErrIndexSize
	}
	copy(pi.ProcInst.Inst[offset:], arg[:count])
	return nil
}

func (pi *procinst) SubstringData(offset, count int) (string, error) {
	if offset < 0 || count < 0 || offset+count > len(pi.ProcInst.Inst) {
		return "", ErrIndexSize
	}
	return string(pi.ProcInst.Inst[offset : offset+count]), nil
}

func (pi *procinst) SetValue(value string) error { return pi.SetData(value) }

// The wrapper methods below shadow the promoted *procinst mutators so
// every change synthesizes DOMCharacterDataModified.

func (pi procinstNode) SetValue(v string) error { return pi.SetData(v) }

func (pi procinstNode) SetData(arg string) error {
	return withCharDataMutation(pi.node, func() error { return pi.procinst.SetData(arg) })
}

func (pi procinstNode) AppendData(arg string) error {
	return withCharDataMutation(pi.node, func() error { return pi.procinst.AppendData(arg) })
}

func (pi procinstNode) InsertData(offset int, arg string) error {
	return withCharDataMutation(pi.node, func() error { return pi.procinst.InsertData(offset, arg) })
}

func (pi procinstNode) DeleteData(offset, count int) error {
	return withCharDataMutation(pi.node, func() error { return pi.procinst.DeleteData(offset, count) })
}

func (pi procinstNode) ReplaceData(offset, count int, arg string) error {
	return withCharDataMutation(pi.node, func() error { return pi.procinst.ReplaceData(offset, count, arg) })
}

func newProcInst(pi xml.ProcInst) *node { return &node{value: &procinst{pi.Copy()}} }

var (
	_ ProcessingInstruction = procinstNode{}
	_ ProcessingInstruction = &procinstNode{}
)
