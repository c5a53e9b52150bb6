package entities

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

const (
	// PomNamespace is the namespace every queried or created element lives in.
	PomNamespace = "http://maven.apache.org/POM/4.0.0"

	defaultIndent = "    "
	projectTag    = "project"
)

// PomDocument is an ordered, namespace-aware view of a pom.xml. Queries only
// see elements in the configured namespace and every element it creates is
// placed in that namespace. Untouched content round-trips unchanged.
type PomDocument struct {
	doc       *etree.Document
	namespace string
}

// ProjectIdentity is the descriptive part of a project's root element.
type ProjectIdentity struct {
	GroupID      string
	ArtifactID   string
	Version      string
	Organization string
}

// ParsePomDocument reads a document from memory.
func ParsePomDocument(data []byte) (*PomDocument, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return &PomDocument{doc: doc, namespace: PomNamespace}, nil
}

// ReadPomDocument reads a document from r.
func ReadPomDocument(r io.Reader) (*PomDocument, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return &PomDocument{doc: doc, namespace: PomNamespace}, nil
}

// Namespace returns the namespace the document is scoped to.
func (d *PomDocument) Namespace() string { return d.namespace }

// WriteTo serializes the document to w.
func (d *PomDocument) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// Bytes serializes the document.
func (d *PomDocument) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// Project returns the root project element, failing with ErrMalformedDocument
// when the root is missing or is not a project in the configured namespace.
func (d *PomDocument) Project() (*etree.Element, error) {
	root := d.doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}
	if root.Tag != projectTag || namespaceOf(root) != d.namespace {
		return nil, fmt.Errorf(
			"%w: root element is <%s> in namespace %q, expected <%s> in %q",
			ErrMalformedDocument, root.FullTag(), namespaceOf(root), projectTag, d.namespace,
		)
	}
	return root, nil
}

// Children returns the direct children of parent named tag.
func (d *PomDocument) Children(parent *etree.Element, tag string) []*etree.Element {
	var children []*etree.Element
	for _, child := range parent.ChildElements() {
		if child.Tag == tag && namespaceOf(child) == d.namespace {
			children = append(children, child)
		}
	}
	return children
}

// Child returns the first direct child of parent named tag, or nil.
func (d *PomDocument) Child(parent *etree.Element, tag string) *etree.Element {
	children := d.Children(parent, tag)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// ChildText returns the trimmed text of the first child named tag.
func (d *PomDocument) ChildText(parent *etree.Element, tag string) string {
	child := d.Child(parent, tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// Path walks tags from parent and returns every element reached, e.g.
// Path(project, "dependencyManagement", "dependencies", "dependency").
func (d *PomDocument) Path(parent *etree.Element, tags ...string) []*etree.Element {
	current := []*etree.Element{parent}
	for _, tag := range tags {
		var next []*etree.Element
		for _, element := range current {
			next = append(next, d.Children(element, tag)...)
		}
		current = next
	}
	return current
}

// FindDependencies returns the dependency children of parent whose groupId
// and artifactId children equal the given values.
func (d *PomDocument) FindDependencies(parent *etree.Element, groupID, artifactID string) []*etree.Element {
	var matches []*etree.Element
	for _, dependency := range d.Children(parent, "dependency") {
		if d.ChildText(dependency, "groupId") == groupID &&
			d.ChildText(dependency, "artifactId") == artifactID {
			matches = append(matches, dependency)
		}
	}
	return matches
}

// EnsureChild returns the first child of parent named tag, creating it when
// absent. Existing content is never touched.
func (d *PomDocument) EnsureChild(parent *etree.Element, tag string) *etree.Element {
	if child := d.Child(parent, tag); child != nil {
		return child
	}
	return d.AppendChild(parent, tag, "")
}

// AppendChild adds a new element named tag as the last child of parent,
// indented like its siblings. An empty text leaves the element empty.
func (d *PomDocument) AppendChild(parent *etree.Element, tag, text string) *etree.Element {
	name := tag
	if parent.Space != "" {
		name = parent.Space + ":" + tag
	}
	child := etree.NewElement(name)
	if text != "" {
		child.SetText(text)
	}

	insertIndented(parent, child)

	if namespaceOf(child) != d.namespace {
		child.Space = ""
		child.CreateAttr("xmlns", d.namespace)
	}
	return child
}

// RemoveChild detaches child from parent together with the indentation in front of it.
func (d *PomDocument) RemoveChild(parent, child *etree.Element) {
	idx := tokenIndex(parent, child)
	if idx < 0 {
		return
	}
	var indentation etree.Token
	if idx > 0 && isBlank(parent.Child[idx-1]) {
		indentation = parent.Child[idx-1]
	}
	parent.RemoveChild(child)
	if indentation != nil {
		parent.RemoveChild(indentation)
	}
}

// SetText replaces the character data of element.
func (d *PomDocument) SetText(element *etree.Element, text string) {
	element.SetText(text)
}

// Identity reads groupId, artifactId, version and organization name from the
// project root, falling back to the parent declaration for groupId and version.
func (d *PomDocument) Identity() (ProjectIdentity, error) {
	project, err := d.Project()
	if err != nil {
		return ProjectIdentity{}, err
	}

	identity := ProjectIdentity{
		GroupID:    d.ChildText(project, "groupId"),
		ArtifactID: d.ChildText(project, "artifactId"),
		Version:    d.ChildText(project, "version"),
	}
	if parent := d.Child(project, "parent"); parent != nil {
		if identity.GroupID == "" {
			identity.GroupID = d.ChildText(parent, "groupId")
		}
		if identity.Version == "" {
			identity.Version = d.ChildText(parent, "version")
		}
	}
	if organization := d.Child(project, "organization"); organization != nil {
		identity.Organization = d.ChildText(organization, "name")
	}
	return identity, nil
}

// ManagedVersion returns the version pinned for groupID:artifactID in
// dependencyManagement, or "" when there is none.
func (d *PomDocument) ManagedVersion(groupID, artifactID string) string {
	project, err := d.Project()
	if err != nil {
		return ""
	}
	for _, dependencies := range d.Path(project, "dependencyManagement", "dependencies") {
		for _, dependency := range d.FindDependencies(dependencies, groupID, artifactID) {
			if version := d.ChildText(dependency, "version"); version != "" {
				return version
			}
		}
	}
	return ""
}

// Equal reports structural equality: same elements, attributes, non-blank
// text and comments in the same order. Indentation is ignored.
func (d *PomDocument) Equal(other *PomDocument) bool {
	return d.canonical() == other.canonical()
}

func (d *PomDocument) canonical() string {
	var sb strings.Builder
	for _, token := range d.doc.Child {
		writeCanonical(&sb, token)
	}
	return sb.String()
}

func writeCanonical(sb *strings.Builder, token etree.Token) {
	switch t := token.(type) {
	case *etree.Element:
		sb.WriteString("<" + t.FullTag())
		attrs := slices.Clone(t.Attr)
		slices.SortFunc(attrs, func(a, b etree.Attr) int {
			return strings.Compare(a.FullKey(), b.FullKey())
		})
		for _, attr := range attrs {
			sb.WriteString(" " + attr.FullKey() + "=" + attr.Value)
		}
		sb.WriteString(">")
		for _, child := range t.Child {
			writeCanonical(sb, child)
		}
		sb.WriteString("</" + t.FullTag() + ">")
	case *etree.CharData:
		sb.WriteString(strings.TrimSpace(t.Data))
	case *etree.Comment:
		sb.WriteString("<!--" + t.Data + "-->")
	}
}

// namespaceOf resolves the namespace URI of element from the xmlns
// declarations in scope.
func namespaceOf(element *etree.Element) string {
	space, key := "", "xmlns"
	if element.Space != "" {
		space, key = "xmlns", element.Space
	}
	for current := element; current != nil; current = current.Parent() {
		for _, attr := range current.Attr {
			if attr.Space == space && attr.Key == key {
				return attr.Value
			}
		}
	}
	return ""
}

// insertIndented places child as the last element of parent, reusing the
// indentation already present around parent's children.
func insertIndented(parent, child *etree.Element) {
	parentIndent := indentOf(parent)
	childIndent := parentIndent + indentUnit(parent, parentIndent)

	tokens := parent.Child
	if n := len(tokens); n > 0 && isBlank(tokens[n-1]) {
		parent.InsertChildAt(n-1, etree.NewText("\n"+childIndent))
		parent.InsertChildAt(n, child)
		return
	}

	parent.AddChild(etree.NewText("\n" + childIndent))
	parent.AddChild(child)
	parent.AddChild(etree.NewText("\n" + parentIndent))
}

// indentOf returns the whitespace after the last newline in front of element.
func indentOf(element *etree.Element) string {
	parent := element.Parent()
	if parent == nil {
		return ""
	}
	idx := tokenIndex(parent, element)
	if idx <= 0 {
		return ""
	}
	data, ok := parent.Child[idx-1].(*etree.CharData)
	if !ok || strings.TrimSpace(data.Data) != "" {
		return ""
	}
	if at := strings.LastIndex(data.Data, "\n"); at >= 0 {
		return data.Data[at+1:]
	}
	return ""
}

// indentUnit guesses one level of indentation from the nearest element that
// already has indented children, defaulting to four spaces.
func indentUnit(parent *etree.Element, parentIndent string) string {
	for current := parent; current != nil; current = current.Parent() {
		base := indentOf(current)
		if current == parent {
			base = parentIndent
		}
		for _, child := range current.ChildElements() {
			indent := indentOf(child)
			if len(indent) > len(base) && strings.HasPrefix(indent, base) {
				return indent[len(base):]
			}
		}
	}
	return defaultIndent
}

func tokenIndex(parent *etree.Element, token etree.Token) int {
	for i, child := range parent.Child {
		if child == token {
			return i
		}
	}
	return -1
}

func isBlank(token etree.Token) bool {
	data, ok := token.(*etree.CharData)
	return ok && strings.TrimSpace(data.Data) == ""
}
