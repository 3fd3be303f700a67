// Package icons defines the launcher icon density buckets.
//
// Each bucket maps an Android display-density class to the square pixel size
// of its launcher icon. The table is fixed at build time and read-only; callers
// receive copies so generation code can never mutate it.
package icons
