package dom

import (
	"errors"
	"testing"

	xml "github.com/andaru/flexml"
)

func TestCreateDocumentType(t *testing.T) {
	tests := []struct {
		name                         string
		docName, publicID, systemID string
	}{
		{"no external ids", "root", "", ""},
		{"public and system ids", "html", "-//W3C//DTD XHTML 1.0 Strict//EN", "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := CreateDocumentType(tt.docName, tt.publicID, tt.systemID)
			if got := dt.Name().Local; got != tt.docName {
				t.Errorf("Name() = %v, want %v", got, tt.docName)
			}
			if got := dt.PublicID(); got != tt.publicID {
				t.Errorf("PublicID() = %v, want %v", got, tt.publicID)
			}
			if got := dt.SystemID(); got != tt.systemID {
				t.Errorf("SystemID() = %v, want %v", got, tt.systemID)
			}
			if got := dt.NodeType(); got != NodeTypeDocumentType {
				t.Errorf("NodeType() = %v, want %v", got, NodeTypeDocumentType)
			}
		})
	}
}

func TestDocumentTypeAsChildOfDocument(t *testing.T) {
	doc := newDocument(nil).asDocument()
	dt := CreateDocumentType("root", "", "")
	if err := doc.AppendChild(dt); err != nil {
		t.Fatalf("AppendChild() error = %v", err)
	}
	if got := doc.FirstChild(); got == nil || got.NodeType() != NodeTypeDocumentType {
		t.Errorf("doc.FirstChild() = %v, want a DOCUMENT_TYPE_NODE", got)
	}
}

func TestDocumentTypeRejectedAsChildOfElement(t *testing.T) {
	root := CreateElement(xml.StartElement{Name: xml.Name{Local: "root"}})
	dt := CreateDocumentType("root", "", "")
	if err := root.AppendChild(dt); err == nil {
		t.Error("AppendChild() error = nil, want ErrHierarchyRequest")
	}
}

func TestDocumentRejectsSecondDocumentTypeChild(t *testing.T) {
	doc := newDocument(nil).asDocument()
	if err := doc.AppendChild(CreateDocumentType("root", "", "")); err != nil {
		t.Fatalf("first AppendChild() error = %v", err)
	}
	err := doc.AppendChild(CreateDocumentType("root", "", ""))
	if err == nil {
		t.Fatal("second AppendChild() error = nil, want ErrHierarchyRequest")
	}
	if !errors.Is(err, ErrHierarchyRequest) {
		t.Errorf("second AppendChild() error = %v, want ErrHierarchyRequest", err)
	}
}

func TestDocumentRejectsSecondElementChild(t *testing.T) {
	doc := newDocument(nil).asDocument()
	first := CreateElement(xml.StartElement{Name: xml.Name{Local: "root"}})
	if err := doc.AppendChild(first); err != nil {
		t.Fatalf("first AppendChild() error = %v", err)
	}
	second := CreateElement(xml.StartElement{Name: xml.Name{Local: "other"}})
	err := doc.AppendChild(second)
	if err == nil {
		t.Fatal("second AppendChild() error = nil, want ErrHierarchyRequest")
	}
	if !errors.Is(err, ErrHierarchyRequest) {
		t.Errorf("second AppendChild() error = %v, want ErrHierarchyRequest", err)
	}
}
