package core

import (
	"net/url"
	"strings"
)

// Key names one level of the component tree. Keys are chosen by the
// programmer and must be stable across frames for state to survive.
type Key string

// Identity is the key a stateful component occurrence is stored under:
// the escaped path of keys from the root, then '#', then a tag.
type Identity string

func makeIdentity(path []Key, tag string) Identity {
	var sb strings.Builder
	for i, k := range path {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(url.PathEscape(string(k)))
	}
	sb.WriteByte('#')
	sb.WriteString(url.PathEscape(tag))
	return Identity(sb.String())
}

// Path returns the path part of the identity.
func (id Identity) Path() string {
	path, _, _ := strings.Cut(string(id), "#")
	return path
}

// Tag returns the tag part of the identity.
func (id Identity) Tag() string {
	_, tag, _ := strings.Cut(string(id), "#")
	return tag
}

func (id Identity) String() string {
	return string(id)
}
