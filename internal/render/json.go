package render

import (
	"encoding/json"

	"github.com/hyperifyio/linresume/internal/profile"
)

// JSON serializes the full record. This is the transient exchange
// format; the retention policy deletes it after the documents are out.
func JSON(data profile.ProfileData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
