// Package planner builds the redirection plan for a reslotted stage.
//
// Given the base game's manifest and the asset files present in a mod folder,
// the planner decides which base-game files are shared with the new stage
// (because the mod does not replace them) and which files and directories are
// new to the game and must be registered.
//
// Key responsibilities:
//   - Redirect unreplaced stage files from the base stage to the current stage
//   - Redirect the sound, UI and effect assets that live outside stage/
//   - Collect new files and group them by directory
//   - Collect new directories, including the re-rooted base stage tree
//
// Plans are deterministic: every list keeps first-seen order and entries are
// never removed once added.
package planner
