package dom

import (
	"testing"

	xml "github.com/andaru/flexml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAttributeMissingReturnsEmptyString(t *testing.T) {
	root := elem("root")
	assert.Equal(t, "", root.GetAttribute(xml.Name{Local: "missing"}))
}

func TestSetAttributeThenGetAttributeRoundTrips(t *testing.T) {
	root := elem("root")
	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a1"}, Value: "v1"}))
	assert.Equal(t, "v1", root.GetAttribute(xml.Name{Local: "a1"}))
}

func TestSetAttributeSameValueIsNoOp(t *testing.T) {
	root := elem("root")
	var log []string
	root.AddEventListener(EventAttrModified, logListener("root", &log), false)

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a1"}, Value: "v1"}))
	require.Len(t, log, 1)

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a1"}, Value: "v1"}))
	assert.Len(t, log, 1, "setting the same value again should not fire DOMAttrModified")
}

func TestRemoveAttributeMissingIsNoOp(t *testing.T) {
	root := elem("root")
	var log []string
	root.AddEventListener(EventAttrModified, logListener("root", &log), false)
	require.NoError(t, root.RemoveAttribute(xml.Name{Local: "missing"}))
	assert.Empty(t, log)
}

func TestSetAttributeOnNonElementRejected(t *testing.T) {
	text := CreateText(xml.CharData("hi"))
	err := text.(AttributeProvider).SetAttribute(xml.Attr{Name: xml.Name{Local: "a1"}, Value: "v1"})
	assert.ErrorIs(t, err, ErrHierarchyRequest)
}

func TestGetElementByIDTracksDefaultIDAttribute(t *testing.T) {
	doc := NewDocument(nil)
	root := doc.CreateElement(xml.StartElement{Name: xml.Name{Local: "root"}})
	require.NoError(t, doc.AppendChild(root))

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "id"}, Value: "r1"}))
	found := doc.GetElementByID("r1")
	require.NotNil(t, found)
	assert.Equal(t, "root", found.Name().Local)

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "id"}, Value: "r2"}))
	assert.Nil(t, doc.GetElementByID("r1"))
	assert.NotNil(t, doc.GetElementByID("r2"))

	require.NoError(t, root.RemoveAttribute(xml.Name{Local: "id"}))
	assert.Nil(t, doc.GetElementByID("r2"))
}

func TestSetIDAttributeNameChangesIndexedAttribute(t *testing.T) {
	doc := NewDocument(nil)
	doc.SetIDAttributeName("xml:id")
	root := doc.CreateElement(xml.StartElement{Name: xml.Name{Local: "root"}})
	require.NoError(t, doc.AppendChild(root))

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "id"}, Value: "ignored"}))
	assert.Nil(t, doc.GetElementByID("ignored"))

	require.NoError(t, root.SetAttribute(xml.Attr{Name: xml.Name{Local: "xml:id"}, Value: "tracked"}))
	assert.NotNil(t, doc.GetElementByID("tracked"))
}
