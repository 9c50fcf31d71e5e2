package avl

import (
	"fmt"
	"strings"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// String returns a line-drawn dump of the tree with each value's
// balance factor, mainly useful when debugging or reading test
// failures. A balanced tree over 1..7 looks like this:
//	4 (+0)
//	├─L─2 (+0)
//	│   ├─L─1 (+0)
//	│   └─R─3 (+0)
//	└─R─6 (+0)
//	    ├─L─5 (+0)
//	    └─R─7 (+0)
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, t.root, "", "", true, false)
	return sb.String()
}

func printvisit[T any](
	sb *strings.Builder, n *node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	fmt.Fprintf(sb, "%v (%+d)\n", n.value, n.balance)

	if n.left != nil {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != nil)
	}

	if n.right != nil {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
