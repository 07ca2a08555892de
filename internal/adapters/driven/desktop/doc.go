// Package desktop implements the clipboard and URL opener ports. Copying
// goes through atotto/clipboard; URLs are handed to open, xdg-open or
// rundll32.
package desktop
