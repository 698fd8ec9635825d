package rclgo

import (
	"fmt"
	"strings"
)

// InvalidNameError reports why a node name, namespace, or topic name was
// rejected. Offset is the byte offset of the offending character where that
// is meaningful, otherwise 0.
type InvalidNameError struct {
	Name   string
	Offset int
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s (at offset %d)", e.Name, e.Reason, e.Offset)
}

func nameError(name string, offset int, reason string) error {
	return &InvalidNameError{Name: name, Offset: offset, Reason: reason}
}

func isTokenChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// checkToken validates a single name token (no separators). offset is the
// byte offset of the token within the larger name, used for error reporting.
func checkToken(name, token string, offset int) error {
	if token == "" {
		return nameError(name, offset, "empty name token")
	}
	if isDigit(token[0]) {
		return nameError(name, offset, "token must not start with a digit")
	}
	for i := 0; i < len(token); i++ {
		if !isTokenChar(token[i]) {
			return nameError(name, offset+i, fmt.Sprintf("unexpected character %q", token[i]))
		}
	}
	return nil
}

// checkSubstitution validates a {substitution} token, braces included.
func checkSubstitution(name, token string, offset int) error {
	inner := token[1 : len(token)-1]
	if inner == "" {
		return nameError(name, offset+1, "empty substitution")
	}
	return checkToken(name, inner, offset+1)
}

// ValidateNodeName checks a bare node name: one token of alphanumerics and
// underscores, not starting with a digit.
func ValidateNodeName(name string) error {
	if name == "" {
		return nameError(name, 0, "node name must not be empty")
	}
	return checkToken(name, name, 0)
}

// ValidateNamespace checks a namespace: absolute, no trailing slash (except
// the root namespace "/"), each token valid.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return nameError(ns, 0, "namespace must not be empty")
	}
	if ns[0] != '/' {
		return nameError(ns, 0, "namespace must be absolute")
	}
	if ns == "/" {
		return nil
	}
	if strings.HasSuffix(ns, "/") {
		return nameError(ns, len(ns)-1, "namespace must not end with a slash")
	}
	offset := 1
	for _, token := range strings.Split(ns[1:], "/") {
		if err := checkToken(ns, token, offset); err != nil {
			return err
		}
		offset += len(token) + 1
	}
	return nil
}

// ValidateTopicName checks a topic or service name before expansion.
// Absolute ("/a/b"), relative ("a/b"), and private ("~", "~/a") forms are
// accepted, as are {node} and {ns} style substitutions.
func ValidateTopicName(name string) error {
	return validateName(name, false, true)
}

func validateName(name string, allowWildcards, allowSubstitutions bool) error {
	if name == "" {
		return nameError(name, 0, "name must not be empty")
	}
	body := name
	offset := 0
	if body[0] == '~' {
		body = body[1:]
		offset = 1
		if body == "" {
			return nil
		}
		if body[0] != '/' {
			return nameError(name, 1, "private name must continue with a slash")
		}
		body = body[1:]
		offset = 2
	} else if body[0] == '/' {
		body = body[1:]
		offset = 1
	}
	if body == "" {
		return nameError(name, len(name)-1, "name must not end with a slash")
	}
	if strings.HasSuffix(body, "/") {
		return nameError(name, len(name)-1, "name must not end with a slash")
	}
	for _, token := range strings.Split(body, "/") {
		var err error
		switch {
		case allowWildcards && (token == "*" || token == "**"):
			// single- and multi-token wildcards are complete tokens
		case allowSubstitutions && len(token) >= 2 && token[0] == '{' && token[len(token)-1] == '}':
			err = checkSubstitution(name, token, offset)
		default:
			err = checkToken(name, token, offset)
		}
		if err != nil {
			return err
		}
		offset += len(token) + 1
	}
	return nil
}

// FullyQualifiedNodeName joins a namespace and a node name into an absolute
// name, e.g. ("/demo", "talker") -> "/demo/talker".
func FullyQualifiedNodeName(namespace, nodeName string) string {
	if namespace == "" || namespace == "/" {
		return "/" + nodeName
	}
	return namespace + "/" + nodeName
}

// ExpandTopicName turns a possibly relative or private topic name into a
// fully qualified one. {node} and {ns} (or {namespace}) substitutions are
// applied first, then "~" expands to the node's private namespace and
// relative names are joined onto the node namespace.
func ExpandTopicName(name, nodeName, namespace string) (string, error) {
	if err := ValidateNodeName(nodeName); err != nil {
		return "", err
	}
	if err := ValidateNamespace(namespace); err != nil {
		return "", err
	}
	if err := ValidateTopicName(name); err != nil {
		return "", err
	}

	replacer := strings.NewReplacer(
		"{node}", nodeName,
		"{namespace}", namespace,
		"{ns}", namespace,
	)
	name = replacer.Replace(name)

	var expanded string
	switch {
	case strings.HasPrefix(name, "/"):
		expanded = name
	case strings.HasPrefix(name, "~"):
		expanded = FullyQualifiedNodeName(namespace, nodeName) + name[1:]
	default:
		if namespace == "/" {
			expanded = "/" + name
		} else {
			expanded = namespace + "/" + name
		}
	}

	// Substitutions can splice in the root namespace and produce "//".
	expanded = strings.ReplaceAll(expanded, "//", "/")

	if err := validateName(expanded, false, false); err != nil {
		return "", err
	}
	return expanded, nil
}
