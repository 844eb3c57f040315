// Package service holds the application's business logic, one service
// per domain area, each depending only on repository and storage
// interfaces.
package service

import "strings"

// storagePath maps a public CDN URL back to its storage-relative path.
// Returns false for URLs that do not live under our CDN.
func storagePath(url, cdnBase string) (string, bool) {
	if !strings.HasPrefix(url, cdnBase+"/") {
		return "", false
	}
	return strings.TrimPrefix(url, cdnBase+"/"), true
}
