package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
)

// ManifestName is where a run's summary lands inside the output dir.
const ManifestName = "manifest.json"

func (p *Pipeline) writeManifest(ctx context.Context, result *Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return p.store.Save(ctx, ManifestName, data)
}
