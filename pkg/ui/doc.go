// Package ui decides how command output is presented: which backend to
// render for when the user asks for automatic detection.
package ui
