package local

import (
	"os"
	"os/user"
)

// OwnerLookup returns the name of the user owning a file, or "" if unknown
type OwnerLookup func(info os.FileInfo) string

// LookupUserID resolves a numeric uid; replaced in tests
var LookupUserID = user.LookupId
