//go:build !unix

package local

import "os"

// LookupOwner is not supported on this platform
func LookupOwner(info os.FileInfo) string {
	return ""
}
