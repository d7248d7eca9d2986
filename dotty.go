package dtree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a directory tree in Graphviz DOT format
// (for debugging purposes).
//
// Ownership edges point from parents to children; parent back-references
// are drawn as dashed edges, which makes a broken back-link visible at a
// glance in the rendered graph.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	if t != nil && t.root != nil {
		var walk func(node *Node)
		walk = func(node *Node) {
			ID := ids.alloc(node)
			styles := nodeDotStyles(node.NumChildren() == 0)
			label := fmt.Sprintf("%d\\n“%s”", node.Path().Depth(), node.Path().Base())
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			if node.Parent() != nil {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n",
					ID, ids.find(node.Parent()))
			}
			for _, child := range node.children {
				cid := ids.alloc(child)
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, cid)
			}
			for _, child := range node.children {
				walk(child)
			}
		}
		walk(t.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
