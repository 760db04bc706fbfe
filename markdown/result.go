package markdown

import "github.com/rgonek/sitegen/htmlnode"

// Result holds the output of a compilation.
type Result struct {
	Root     *htmlnode.Parent `json:"-"`
	Warnings []Warning        `json:"warnings,omitempty"`
}

// WarningType categorizes compilation warnings.
type WarningType string

const (
	WarningHeadingLevelZero WarningType = "heading_level_zero"
	WarningDroppedListItem  WarningType = "dropped_list_item"
)

// Warning represents a non-fatal issue encountered during compilation.
type Warning struct {
	Type      WarningType `json:"type"`
	Block     int         `json:"block"`
	BlockType string      `json:"blockType,omitempty"`
	Message   string      `json:"message"`
}
