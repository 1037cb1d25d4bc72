package easel

// BlendMode is the per-pixel compositing operator combining new paint with
// existing surface content. The set covers the Porter-Duff operators plus
// the W3C separable and non-separable blend modes.
type BlendMode int

const (
	// Porter-Duff compositing operators.
	BlendClear   BlendMode = iota // result is transparent
	BlendSrc                      // source replaces destination
	BlendDst                      // destination is kept
	BlendSrcOver                  // source over destination (default)
	BlendDstOver                  // destination over source
	BlendSrcIn                    // source where destination is opaque
	BlendDstIn                    // destination where source is opaque
	BlendSrcOut                   // source where destination is transparent
	BlendDstOut                   // destination where source is transparent
	BlendSrcAtop                  // source atop destination
	BlendDstAtop                  // destination atop source
	BlendXor                      // source and destination where they do not overlap
	BlendAdd                      // saturating sum of source and destination

	// Separable blend modes (W3C Compositing and Blending Level 1).
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply

	// Non-separable blend modes.
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendClear:      "Clear",
	BlendSrc:        "Src",
	BlendDst:        "Dst",
	BlendSrcOver:    "SrcOver",
	BlendDstOver:    "DstOver",
	BlendSrcIn:      "SrcIn",
	BlendDstIn:      "DstIn",
	BlendSrcOut:     "SrcOut",
	BlendDstOut:     "DstOut",
	BlendSrcAtop:    "SrcAtop",
	BlendDstAtop:    "DstAtop",
	BlendXor:        "Xor",
	BlendAdd:        "Add",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendMultiply:   "Multiply",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// String returns the wire name of the blend mode.
func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// ParseBlendMode maps a wire name to a BlendMode.
// Returns false for unrecognized names; unknown tags are never defaulted.
func ParseBlendMode(name string) (BlendMode, bool) {
	for mode, n := range blendModeNames {
		if n == name {
			return BlendMode(mode), true
		}
	}
	return BlendSrcOver, false
}
