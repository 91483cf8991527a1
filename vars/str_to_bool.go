package vars

import "strings"

func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}
