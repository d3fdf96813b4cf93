// Package terminal runs the game on a tcell screen.
//
// Features:
//   - Pixel-space draw commands rasterized onto character cells
//   - Held-key emulation for terminals that report no key release
//   - Status line, pause and game-over overlays, leaderboard and metrics panels
//   - Panic-safe restoration of the terminal
package terminal
