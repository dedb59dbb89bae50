package tree

import "github.com/jedib0t/go-pretty/v6/list"

// placeholder marks the absent side of a node which has a single child.
const placeholder = "·"

// Render returns a textual representation of the binary structure rooted at
// root. The zero value of N represents an absent subtree, label formats a node,
// and child returns the left (0) or right (1) child of a node.
//
// Nodes are listed in pre-order, each one followed by its left then right
// subtree one level deeper. The empty structure renders as an empty string.
func Render[N comparable](root N, label func(N) string, child func(N, int) N) string {
	var none N
	if root == none {
		return ""
	}
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedLight)
	render(w, root, label, child)
	return w.Render()
}

func render[N comparable](w list.Writer, n N, label func(N) string, child func(N, int) N) {
	var none N
	w.AppendItem(label(n))

	l, r := child(n, 0), child(n, 1)
	if l == none && r == none {
		return
	}

	w.Indent()
	for _, c := range [2]N{l, r} {
		if c == none {
			w.AppendItem(placeholder)
		} else {
			render(w, c, label, child)
		}
	}
	w.UnIndent()
}
