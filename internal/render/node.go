package render

import (
	"html"
	"sort"
	"strings"
)

// Node es un elemento HTML mínimo que los controladores construyen sin tocar markup.
type Node struct {
	Tag      string
	Class    string
	Text     string
	Attrs    map[string]string
	Children []Node
}

func El(tag, class, text string, children ...Node) Node {
	return Node{Tag: tag, Class: class, Text: text, Children: children}
}

// With devuelve una copia del nodo con un atributo extra.
func (n Node) With(key, value string) Node {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}

var allowedTags = map[string]bool{
	"div": true, "p": true, "h2": true, "span": true, "strong": true,
	"a": true, "button": true, "form": true,
}

// HTML serializa el nodo; etiquetas fuera de la lista se degradan a span.
func (n Node) HTML() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	tag := n.Tag
	if tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	if !allowedTags[tag] {
		tag = "span"
	}
	b.WriteString("<" + tag)
	if n.Class != "" {
		b.WriteString(` class="` + html.EscapeString(n.Class) + `"`)
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + html.EscapeString(k) + `="` + html.EscapeString(n.Attrs[k]) + `"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.Text))
	for _, child := range n.Children {
		child.write(b)
	}
	b.WriteString("</" + tag + ">")
}

// TextContent concatena el texto del nodo y sus hijos.
func (n Node) TextContent() string {
	var b strings.Builder
	b.WriteString(n.Text)
	for _, child := range n.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}
