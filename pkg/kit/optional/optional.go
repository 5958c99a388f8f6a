package optional

import (
	"net/url"

	"github.com/ib-77/gqkit/pkg/kit/stringx"
)

func IsNil[T any](v *T) bool {
	return v == nil
}

func IsNotNil[T any](v *T) bool {
	return v != nil
}

func IsNilOrEmpty[S ~[]E, E any](v *S) bool {
	return v == nil || len(*v) == 0
}

func IsNilOrEmptyString(v *string) bool {
	return v == nil || len(*v) == 0
}

func IsNilOrEmptyMap[M ~map[K]V, K comparable, V any](v *M) bool {
	return v == nil || len(*v) == 0
}

// ToURL parses s as a URL. Parseable means accepted by url.Parse, which also takes
// relative references and strings with spaces such as "a b".
func ToURL(s *string) *url.URL {
	if stringx.IsBlankPtr(s) {
		return nil
	}

	u, err := url.Parse(*s)
	if err != nil {
		return nil
	}
	return u
}
