package shared

import (
	"hall-allocation/internal/infra"
)

// TranslateNotFound replaces a repository NOT_FOUND error with the domain's
// own not-found error. Other errors pass through unchanged.
func TranslateNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
