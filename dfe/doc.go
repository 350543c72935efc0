// Package dfe reads the XML files written by darkFunction Editor.
//
// Two kinds of files are supported: sprite sheet definitions (usually with a
// .sprites extension), which name rectangles within a single image and group
// them into a tree of directories, and animation sets (.anim), which refer to
// a sprite sheet and list ordered cells pointing at those named rectangles.
//
// Only attributes are used; element text content is ignored. Values are kept
// as the strings found in the file and converted on demand, so that a file
// with a broken number can still be loaded and the error reported with the
// offending element's name.
package dfe
