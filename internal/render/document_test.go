package render

import (
	"sync"
	"testing"
)

func TestNodeHTML_EscapesAndOrdersAttrs(t *testing.T) {
	n := El("button", "details-button", "View <Details>").With("data-id", `a"b`).With("aria-label", "x")
	got := n.HTML()
	want := `<button class="details-button" aria-label="x" data-id="a&#34;b">View &lt;Details&gt;</button>`
	if got != want {
		t.Fatalf("unexpected html\n got: %s\nwant: %s", got, want)
	}
}

func TestNodeHTML_UnknownTagDegrades(t *testing.T) {
	if got := El("script", "", "x").HTML(); got != "<span>x</span>" {
		t.Fatalf("expected span fallback, got %s", got)
	}
}

func TestDocument_SetTextClearsNodes(t *testing.T) {
	d := NewDocument()
	d.Replace("r", El("p", "", "a"), El("p", "", "b"))
	if r, _ := d.Region("r"); r.TextContent() != "ab" {
		t.Fatalf("unexpected content %q", r.TextContent())
	}
	d.SetText("r", "plain")
	r, ok := d.Region("r")
	if !ok || len(r.Nodes) != 0 || r.Text != "plain" {
		t.Fatalf("expected text-only region, got %+v", r)
	}
}

func TestDocument_StyleIncludesHidden(t *testing.T) {
	d := NewDocument()
	d.SetStyle("login-result", "color", "red")
	d.Hide("login-result")
	if got := string(d.Style("login-result")); got != "color: red; display: none" {
		t.Fatalf("unexpected style %q", got)
	}
	if d.Written("missing") {
		t.Fatalf("missing region should not be written")
	}
}

func TestDocument_ConcurrentWrites(t *testing.T) {
	d := NewDocument()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Replace("r", El("p", "", "x"))
			d.Alert("a")
		}()
	}
	wg.Wait()
	if len(d.Alerts()) != 50 {
		t.Fatalf("expected 50 alerts, got %d", len(d.Alerts()))
	}
}
