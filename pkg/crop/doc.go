// Package crop cuts a source photo down to a target aspect ratio.
//
// Every [Cropper] returns an image whose width/height ratio equals the
// requested aspect within integer rounding. They differ only in where the
// crop window is placed:
//
//   - [Center]: symmetric margins on the two long edges (default)
//   - [Smart]: the window with the highest detail/skin/saturation score
//   - [Face]: centered on the most confident detected face, clamped to the
//     image; falls back to [Center] when no face is found
//
// The window size is always the one [CenterRect] computes, so the choice of
// cropper never changes how much of the photo survives.
//
// Offsets use floor division, so opposite margins may differ by one pixel.
package crop
