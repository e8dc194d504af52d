package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	Check       = "\U000F012C" // Checkmark, default selection indicator
	CheckBold   = "\U000F0E1E" // Heavy checkmark variant
	Close       = "\U000F0156" // Close/X icon
	ChevronDown = "\U000F0140" // Chevron pointing down
	Dots        = "\U000F01D9" // Horizontal ellipsis / more actions

	Trash   = "\U000F01B4" // Trash can, common destructive action icon
	Pencil  = "\U000F03EB" // Pencil/edit icon
	Share   = "\U000F0497" // Share icon
	Copy    = "\U000F018F" // Copy to clipboard icon
	Star    = "\U000F04CE" // Favorite/star icon
	Archive = "\U000F003C" // Archive box icon
)
