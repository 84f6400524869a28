package netfile

import (
	"testing"

	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// Run with: go test -fuzz=FuzzParseJSON -fuzztime=30s ./pkg/netfile/

func FuzzParseJSON(f *testing.F) {
	seed, _ := Marshal(skillnet.DefaultGraph(), FormatJSON)
	f.Add(seed)
	f.Add([]byte(`{"center":"a","nodes":[{"id":"a","label":"A","size":10,"color":"#fff"}],"edges":[]}`))
	f.Add([]byte(`{"center":"a","nodes":[{"id":"a","size":10,"color":"#fff"},{"id":"b","size":5,"color":"#000"}],"edges":[["a","b"]]}`))

	// Edge cases
	f.Add([]byte(`{}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`null`))
	f.Add([]byte(``))
	f.Add([]byte(`{"center":"a","nodes":[{"id":"a","size":-1,"color":"#fff"}]}`))
	f.Add([]byte(`{"center":"a","nodes":[{"id":"a","size":1,"color":"#fff"}],"edges":[["a"]]}`))
	f.Add([]byte(`{"center":"a","nodes":[{"id":"a","size":1e308,"color":"#fff"}]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		g, err := Parse(data, FormatJSON)
		if err != nil {
			return
		}
		// Anything accepted must survive a round trip.
		out, err := Marshal(g, FormatJSON)
		if err != nil {
			t.Fatalf("marshal accepted graph: %v", err)
		}
		if _, err := Parse(out, FormatJSON); err != nil {
			t.Fatalf("reparse: %v\n%s", err, out)
		}
		_ = GenerateDOT(g)
	})
}

func FuzzParseYAML(f *testing.F) {
	seed, _ := Marshal(skillnet.DefaultGraph(), FormatYAML)
	f.Add(seed)
	f.Add([]byte("center: a\nnodes:\n  - {id: a, size: 10, color: '#fff'}\nedges: []\n"))
	f.Add([]byte(""))
	f.Add([]byte("center: a\nnodes:\n  - {id: a, size: .nan, color: '#fff'}\n"))
	f.Add([]byte("center: [a]\n"))
	f.Add([]byte("&a [*a]"))

	f.Fuzz(func(t *testing.T, data []byte) {
		g, err := Parse(data, FormatYAML)
		if err != nil {
			return
		}
		if _, err := Marshal(g, FormatYAML); err != nil {
			t.Fatalf("marshal accepted graph: %v", err)
		}
	})
}
