package response

import (
	"github.com/jinzhu/copier"
)

// copyFrom maps a read-model view onto its response shape by field name.
// Nested views are converted the same way.
func copyFrom[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func copySlice[T any](src any) ([]*T, error) {
	dst := make([]*T, 0)
	if err := copier.Copy(&dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
