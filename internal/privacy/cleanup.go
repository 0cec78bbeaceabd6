package privacy

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linresume/internal/rawstore"
)

// CleanupArtifacts enforces the retention policy over everything a run
// leaves on disk besides the resume documents themselves: raw page
// snapshots and the transient profile JSON. A maxAge of zero removes
// them all regardless of age.
func CleanupArtifacts(snapshots *rawstore.Store, outputDir string, maxAge time.Duration) (int, error) {
	removed := 0
	if snapshots != nil {
		n, err := snapshots.PurgeByAge(maxAge)
		if err != nil {
			return removed, err
		}
		removed += n
	}

	matches, err := filepath.Glob(filepath.Join(outputDir, "resume_*.json"))
	if err != nil {
		return removed, err
	}
	cutoff := time.Now().Add(-maxAge)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if maxAge > 0 && info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("retention cleanup could not remove file")
			continue
		}
		removed++
	}
	return removed, nil
}
