// Package tui runs the animated views as Bubble Tea programs:
//
//   - [CubeModel]: rotating wireframe cube
//   - [PanModel]: graph whose x window moves with the arrow keys
//   - [AnimateModel]: graph zooming out one unit per side each frame
//
// # Key Bindings
//
//	←/→ or h/l - Pan the x window (pan only)
//	q, Esc     - Quit
package tui
