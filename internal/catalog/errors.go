package catalog

import "errors"

// Rejections. Every operation returning one of these leaves the working
// copy exactly as it was.
var (
	ErrResourceNotFound     = errors.New("resource not found")
	ErrCollectionNotFound   = errors.New("collection not found")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnknownField         = errors.New("unknown field")
	ErrUnknownDirection     = errors.New("unknown direction")
	ErrEmptyLabel           = errors.New("label is empty after sanitizing")
	ErrReservedSubCategory  = errors.New(`"all" is a reserved filter and cannot be used as a sub-category`)
	ErrLastTagline          = errors.New("at least one tagline word must remain")
	ErrDuplicateSubCategory = errors.New("sub-category already declared on the collection")
	ErrUnknownSubCategory   = errors.New("sub-category is not declared on the collection")
)
