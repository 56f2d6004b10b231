// Package color provides value types that can be interpolated by a
// gradient.
//
// Every type has a Mix method with the signature the gradient package
// expects. All of them except Hue implement image/color.Color.
//
//   - [LinRGBA]: linear-light RGB, physically correct blends
//   - [SRGBA]: gamma-encoded sRGB, blends like CSS
//   - [Luma]: linear luminance, with WCAG contrast checks
//   - [Hue], [HSLA]: hue turns along the shorter arc
//   - [Lab], [Luv], [HCL]: perceptual blends backed by go-colorful
//
// Colors are parsed from names and hex strings with [Parse].
package color
