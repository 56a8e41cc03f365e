package docs

import (
	"strings"

	"github.com/vk/docgraph/internal/config"
)

// snapshotSuffix marks a pre-release product version.
const snapshotSuffix = "-SNAPSHOT"

// ArtifactHost selects the documentation host for offline links: the
// snapshot host when the product version carries the pre-release suffix,
// the release host otherwise. Pure function of the workspace metadata.
func ArtifactHost(ws *config.Workspace) string {
	if strings.HasSuffix(ws.Version, snapshotSuffix) {
		return ws.SnapshotHost
	}
	return ws.ReleaseHost
}

// ArtifactPath computes the repository path of a published artifact's
// documentation: group and archives base name with every "." replaced by
// "/", joined with the version.
func ArtifactPath(group, archivesBaseName, version string) string {
	return strings.ReplaceAll(group, ".", "/") + "/" + strings.ReplaceAll(archivesBaseName, ".", "/") + "/" + version
}
