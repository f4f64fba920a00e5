package collections

import "fmt"

// Node is one collection in a rendered hierarchy.
type Node struct {
	ID       string
	Name     string
	Children []*Node
}

// BuildForest converts a directory into a forest of nodes. Collections
// without a parent become roots. A collection whose parent is missing
// from the snapshot becomes a root with a dangling-parent warning, and
// parent cycles are broken by cutting the closing edge and promoting
// that collection to a root. The build always terminates.
//
// Child ordering follows the directory's insertion order.
func BuildForest(dir *Directory) ([]*Node, []Warning) {
	order := dir.IDs()

	var warnings []Warning

	// Effective parent per id, after resolving dangling references.
	parent := make(map[string]string, len(order))
	for _, id := range order {
		rec, _ := dir.Get(id)
		if rec.ParentID == "" {
			parent[id] = ""
			continue
		}
		if _, ok := dir.Get(rec.ParentID); !ok {
			parent[id] = ""
			warnings = append(warnings, Warning{
				Kind:         WarnDanglingParent,
				CollectionID: id,
				Detail:       fmt.Sprintf("parent %q not found, treating as root", rec.ParentID),
			})
			continue
		}
		parent[id] = rec.ParentID
	}

	// Break parent cycles. Walking each unvisited chain marks nodes
	// in-stack; re-entering the stack means the last walked node's
	// parent edge closes a cycle, so that edge is cut.
	const (
		unvisited = iota
		inStack
		done
	)
	state := make(map[string]int, len(order))
	for _, id := range order {
		if state[id] != unvisited {
			continue
		}
		var stack []string
		cur := id
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == inStack {
				last := stack[len(stack)-1]
				parent[last] = ""
				warnings = append(warnings, Warning{
					Kind:         WarnCycle,
					CollectionID: last,
					Detail:       fmt.Sprintf("parent chain loops back through %q, treating as root", cur),
				})
				break
			}
			state[cur] = inStack
			stack = append(stack, cur)
			if parent[cur] == "" {
				break
			}
			cur = parent[cur]
		}
		for _, s := range stack {
			state[s] = done
		}
	}

	nodes := make(map[string]*Node, len(order))
	for _, id := range order {
		rec, _ := dir.Get(id)
		nodes[id] = &Node{ID: id, Name: rec.FriendlyName}
	}

	var roots []*Node
	for _, id := range order {
		if p := parent[id]; p != "" {
			nodes[p].Children = append(nodes[p].Children, nodes[id])
		} else {
			roots = append(roots, nodes[id])
		}
	}

	return roots, warnings
}

// CountNodes counts all nodes in a forest.
func CountNodes(roots []*Node) int {
	count := 0
	for _, r := range roots {
		count += countNode(r)
	}
	return count
}

func countNode(n *Node) int {
	count := 1
	for _, c := range n.Children {
		count += countNode(c)
	}
	return count
}

// Render formats a forest as indented ASCII lines, one per collection.
func Render(roots []*Node) []string {
	var lines []string
	for _, r := range roots {
		lines = append(lines, r.Name)
		lines = renderChildren(r, "", lines)
	}
	return lines
}

func renderChildren(n *Node, prefix string, lines []string) []string {
	for i, child := range n.Children {
		marker, childPrefix := "|-- ", prefix+"|   "
		if i == len(n.Children)-1 {
			marker, childPrefix = "+-- ", prefix+"    "
		}
		lines = append(lines, prefix+marker+child.Name)
		lines = renderChildren(child, childPrefix, lines)
	}
	return lines
}
