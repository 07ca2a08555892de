// Package file stores reliefdir settings in a TOML file, by default
// ~/.reliefdir/config.toml. Writes from concurrent processes are
// serialised with a lock file next to it.
package file
