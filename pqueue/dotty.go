package pqueue

import (
	"fmt"
	"io"
	"strings"
)

// Heap2Dot outputs the internal heap structure of a priority queue in
// Graphviz DOT format (for debugging purposes).
func Heap2Dot(pq *Queue, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for k := 1; k <= pq.size; k++ {
		label := fmt.Sprintf("%d\\n“%s”", k, strstart(pq.item(k)))
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", k, label, nodeDotStyles(k, pq.size))
		for _, child := range []int{2 * k, 2*k + 1} {
			if child <= pq.size {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, child)
			}
		}
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		tracer().Errorf("heap DOT: %s", err.Error())
		return
	}
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(k int, size int) string {
	s := ",style=filled"
	if 2*k > size {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	if k == 1 {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[len(hexhlcolors)-1])
	}
	return s
}

// strstart returns the first characters of an item's text representation,
// escaped for use in a DOT label.
func strstart(item any) string {
	s := fmt.Sprint(item)
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "…"
	}
	return strings.ReplaceAll(s, `"`, `\"`)
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}
