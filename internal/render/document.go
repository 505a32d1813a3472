package render

import (
	"html/template"
	"sort"
	"strings"
	"sync"
)

// Region es el contenido de un contenedor con id de la página.
type Region struct {
	Text   string
	Nodes  []Node
	Hidden bool
	Style  map[string]string
}

// TextContent devuelve el texto visible de la región.
func (r Region) TextContent() string {
	if len(r.Nodes) == 0 {
		return r.Text
	}
	var b strings.Builder
	for _, n := range r.Nodes {
		b.WriteString(n.TextContent())
	}
	return b.String()
}

// Document es un RenderTarget en memoria, seguro para uso concurrente.
type Document struct {
	mu         sync.Mutex
	regions    map[string]*Region
	navigateTo string
	alerts     []string
}

func NewDocument() *Document {
	return &Document{regions: make(map[string]*Region)}
}

func (d *Document) region(name string) *Region {
	r, ok := d.regions[name]
	if !ok {
		r = &Region{}
		d.regions[name] = r
	}
	return r
}

func (d *Document) SetText(region, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.region(region)
	r.Text = text
	r.Nodes = nil
}

func (d *Document) SetStyle(region, property, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.region(region)
	if r.Style == nil {
		r.Style = make(map[string]string)
	}
	r.Style[property] = value
}

func (d *Document) Hide(region string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.region(region).Hidden = true
}

// Replace sustituye todo el contenido de la región en una sola escritura.
func (d *Document) Replace(region string, nodes ...Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.region(region)
	r.Text = ""
	r.Nodes = append([]Node(nil), nodes...)
}

func (d *Document) Navigate(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.navigateTo = url
}

func (d *Document) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, message)
}

// Region devuelve una copia de la región; ok es false si nunca se escribió.
func (d *Document) Region(name string) (Region, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.regions[name]
	if !ok {
		return Region{}, false
	}
	out := *r
	out.Nodes = append([]Node(nil), r.Nodes...)
	if r.Style != nil {
		out.Style = make(map[string]string, len(r.Style))
		for k, v := range r.Style {
			out.Style[k] = v
		}
	}
	return out, true
}

func (d *Document) Navigation() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.navigateTo
}

func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.alerts...)
}

// HTML devuelve el markup de la región para las plantillas.
func (d *Document) HTML(name string) template.HTML {
	r, ok := d.Region(name)
	if !ok {
		return ""
	}
	if len(r.Nodes) == 0 {
		return template.HTML(template.HTMLEscapeString(r.Text))
	}
	var b strings.Builder
	for _, n := range r.Nodes {
		b.WriteString(n.HTML())
	}
	return template.HTML(b.String())
}

func (d *Document) Hidden(name string) bool {
	r, _ := d.Region(name)
	return r.Hidden
}

func (d *Document) Written(name string) bool {
	_, ok := d.Region(name)
	return ok
}

// Style serializa los estilos inline de la región, incluido display:none.
func (d *Document) Style(name string) template.CSS {
	r, _ := d.Region(name)
	parts := make([]string, 0, len(r.Style)+1)
	keys := make([]string, 0, len(r.Style))
	for k := range r.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+": "+r.Style[k])
	}
	if r.Hidden {
		parts = append(parts, "display: none")
	}
	return template.CSS(strings.Join(parts, "; "))
}
