package repositories

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrInvalidRole is returned when a message carries a role outside the closed
// user/alex/sam/system set. Enforced at the storage boundary.
var ErrInvalidRole = errors.New("invalid message role")
