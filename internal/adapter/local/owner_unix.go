//go:build unix

package local

import (
	"os"
	"strconv"
	"syscall"
)

// LookupOwner returns the owner's user name, falling back to the numeric uid
func LookupOwner(info os.FileInfo) string {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return ""
	}

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	u, err := LookupUserID(uid)
	if err != nil || u.Username == "" {
		return uid
	}
	return u.Username
}
