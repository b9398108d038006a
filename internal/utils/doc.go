// Package utils holds small helpers shared by the cmd and configs packages:
// reading a token from stdin or a hidden terminal prompt, locating a config
// file by walking up the directory tree, and formatting name lists.
package utils
