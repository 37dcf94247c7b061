package entity

import "path"

// Asset is a file attached to a draft, uploaded to the blob store at commit.
type Asset struct {
	Filename    string // Original file name, used as the last path segment of the key.
	ContentType string // MIME type reported by the client.
	Data        []byte // File content.
}

// Size returns the asset size in bytes.
func (a Asset) Size() int64 {
	return int64(len(a.Data))
}

// StudentAssetKey returns the blob key an asset is uploaded under.
func StudentAssetKey(identity Identity, filename string) string {
	return path.Join("students", identity.String(), path.Base("/"+filename))
}
