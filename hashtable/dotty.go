package hashtable

import (
	"fmt"
	"io"
	"strings"
)

// Table2Dot outputs the buckets and chains of a hash table in Graphviz DOT
// format (for debugging purposes). Empty buckets are drawn as small circles.
func Table2Dot(ht *Table, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	id := len(ht.slots)
	for i, head := range ht.slots {
		if head == nil {
			nodelist += fmt.Sprintf("\"%d\" %s;\n", i, emptyNode())
			continue
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"[%d]\",shape=box,style=filled,fillcolor=\"#a3d7e4\"];\n", i, i)
		prev := i
		for n := head; n != nil; n = n.next {
			label := fmt.Sprintf("%s\\n%x", escape(n.key), n.hash)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",shape=box];\n", id, label)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", prev, id)
			prev = id
			id++
		}
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		tracer().Errorf("hash table DOT: %s", err.Error())
		return
	}
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
