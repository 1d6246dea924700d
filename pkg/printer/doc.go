// Package printer writes parsed ADT trees for people and tools: an
// indented text tree, JSON, YAML, or canonical ADT text.
//
// Nodes built through a schema are shown with their field names; generic
// nodes list their arguments by position. MaxDepth cuts the output at a
// given level and summarizes the hidden groups by their child count.
package printer
