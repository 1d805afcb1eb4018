package store

import "errors"

// ErrNoToken is returned by [TokenStore.Read] when no token is stored.
var ErrNoToken = errors.New("no session token stored")
