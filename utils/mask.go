package utils

import "strings"

// MaskName hides a display name for public bid histories, keeping only the
// final whitespace-separated token: "Nguyen Van Khoa" -> "****Khoa".
func MaskName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "****"
	}
	return "****" + parts[len(parts)-1]
}
