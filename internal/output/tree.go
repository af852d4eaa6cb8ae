package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 40
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders a project tree with descriptions aligned to a
// common column. files maps slash-separated relative paths to descriptions;
// rootName is the project directory name.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}

	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}

			if isLast {
				child.Description = desc
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// RenderSimpleTree renders a tree without descriptions.
func RenderSimpleTree(rootName string, files []string) string {
	fileMap := make(map[string]string, len(files))
	for _, f := range files {
		fileMap[f] = ""
	}
	return RenderFileTree(rootName, fileMap)
}

// sortTree recursively sorts nodes: directories first, then alphabetically.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleSummary.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		line := prefix + connector + name
		if node.Description != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}
