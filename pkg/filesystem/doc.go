// Package filesystem provides read access to fixture templates.
//
// The FS interface is satisfied by the OS filesystem and by any afero.Fs,
// which lets tests keep fixture trees in memory.
package filesystem
