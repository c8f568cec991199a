package services

import "github.com/kayotadakota/cat-exhibition/models"

// CanWrite reports whether the caller may update or delete the cat. Only the
// owner may; reads and rating submissions are not ownership-guarded.
func CanWrite(caller models.User, cat models.Cat) bool {
	return caller.ID != "" && caller.ID == cat.OwnerID
}
