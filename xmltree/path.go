package xmltree

import "strconv"

// PathStep formats the path step of the index-th (1-based) of count same-named siblings.
// The index is only written when the name is ambiguous among its siblings.
func PathStep(name string, index, count int) string {
	if count > 1 {
		return name + "[" + strconv.Itoa(index) + "]"
	}
	return name
}

// ChildPaths returns the path of every child of n below parent, e.g. /base/widgets/widget[2].
func ChildPaths(parent string, n *Node) []string {
	if n == nil || len(n.Children) == 0 {
		return nil
	}

	counts := make(map[string]int, len(n.Children))
	for _, c := range n.Children {
		counts[c.Name]++
	}

	seen := make(map[string]int, len(counts))
	paths := make([]string, len(n.Children))
	for i, c := range n.Children {
		seen[c.Name]++
		paths[i] = parent + "/" + PathStep(c.Name, seen[c.Name], counts[c.Name])
	}
	return paths
}
