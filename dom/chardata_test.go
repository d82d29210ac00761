package dom

import (
	"testing"

	xml "github.com/andaru/flexml"
	"github.com/stretchr/testify/assert"
)

func TestSubstringDataAcrossCharacterDataTypes(t *testing.T) {
	for _, tt := range []struct {
		name string
		cd   CharacterData
	}{
		{"text", CreateText(xml.CharData("hello world"))},
		{"cdata", CreateCDATASection(xml.CharData("hello world"))},
		{"comment", CreateComment(xml.Comment("hello world"))},
		{"procinst", newProcInst(xml.ProcInst{Target: "pi", Inst: []byte("hello world")}).asProcInst()},
		{"declaration", newDeclaration(xml.ProcInst{Target: "xml", Inst: []byte("hello world")}).asDeclaration()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cd.SubstringData(6, 5)
			assert.NoError(t, err)
			assert.Equal(t, "world", got)
		})
	}
}

func TestSubstringDataOutOfRangeReturnsErrIndexSize(t *testing.T) {
	txt := CreateText(xml.CharData("hi"))
	_, err := txt.SubstringData(1, 5)
	assert.ErrorIs(t, err, ErrIndexSize)

	_, err = txt.SubstringData(-1, 1)
	assert.ErrorIs(t, err, ErrIndexSize)
}

func TestHasChildNodesReflectsChildPresence(t *testing.T) {
	root := elem("root")
	assert.False(t, root.HasChildNodes())
	_ = root.AppendChild(elem("child"))
	assert.True(t, root.HasChildNodes())
}

func TestHasAttributesReflectsAttributePresence(t *testing.T) {
	root := elem("root")
	assert.False(t, root.HasAttributes())
	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v"})
	assert.True(t, root.HasAttributes())
}

func TestSetAttributeNodeAddsThenReplaces(t *testing.T) {
	root := elem("root")
	a1 := CreateAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v1"})

	replaced, err := root.SetAttributeNode(a1)
	assert.NoError(t, err)
	assert.Nil(t, replaced)
	assert.Equal(t, "v1", root.GetAttribute(xml.Name{Local: "a"}))

	a2 := CreateAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v2"})
	replaced, err = root.SetAttributeNode(a2)
	assert.NoError(t, err)
	assert.Equal(t, a1, replaced)
	assert.Equal(t, "v2", root.GetAttribute(xml.Name{Local: "a"}))
}

func TestSetAttributeNodeAlreadyInUseRejected(t *testing.T) {
	root := elem("root")
	other := elem("other")
	a := CreateAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v"})
	_, err := root.SetAttributeNode(a)
	assert.NoError(t, err)

	_, err = other.SetAttributeNode(a)
	assert.ErrorIs(t, err, ErrHierarchyRequest)
}

func TestRemoveAttributeNodeDetaches(t *testing.T) {
	root := elem("root")
	a := CreateAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v"})
	_, err := root.SetAttributeNode(a)
	assert.NoError(t, err)

	assert.NoError(t, root.RemoveAttributeNode(a))
	assert.Equal(t, "", root.GetAttribute(xml.Name{Local: "a"}))
}

func TestRemoveAttributeNodeNotPresentReturnsErrNotFound(t *testing.T) {
	root := elem("root")
	a := CreateAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v"})
	err := root.RemoveAttributeNode(a)
	assert.ErrorIs(t, err, ErrNotFound)
}
