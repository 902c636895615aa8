// Package bitfont provides 8x8 bitmap fonts.
//
// The built-in table is the MSX character set for ' ' through DEL. A Font
// maps code points to Glyphs; Face adapts a Font to the
// golang.org/x/image/font interfaces at an integer scale:
//
//	face, _ := bitfont.NewFace(bitfont.Default(), 2)
//	d := &font.Drawer{Dst: img, Src: image.White, Face: face, Dot: fixed.P(0, 14)}
//	d.DrawString("READY")
package bitfont
