package styles

// Status icons. Plain Unicode so they render without patched fonts.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconBullet  = "•"
)
