package entities

import "fmt"

const (
	compilerPluginGroupID    = "org.apache.maven.plugins"
	compilerPluginArtifactID = "maven-compiler-plugin"
)

// SetLanguageLevel replaces any maven-compiler-plugin declaration under
// build/plugins with a single one whose source and target are level.
func SetLanguageLevel(doc *PomDocument, level string) (*PomDocument, error) {
	if level == "" {
		return nil, fmt.Errorf("%w: empty language level", ErrInvalidInput)
	}

	project, err := doc.Project()
	if err != nil {
		return nil, err
	}

	build := doc.EnsureChild(project, "build")
	plugins := doc.EnsureChild(build, "plugins")

	for _, plugin := range doc.Children(plugins, "plugin") {
		if isCompilerPlugin(doc.ChildText(plugin, "groupId"), doc.ChildText(plugin, "artifactId")) {
			doc.RemoveChild(plugins, plugin)
		}
	}

	plugin := doc.AppendChild(plugins, "plugin", "")
	doc.AppendChild(plugin, "groupId", compilerPluginGroupID)
	doc.AppendChild(plugin, "artifactId", compilerPluginArtifactID)
	configuration := doc.AppendChild(plugin, "configuration", "")
	doc.AppendChild(configuration, "source", level)
	doc.AppendChild(configuration, "target", level)

	return doc, nil
}

// isCompilerPlugin treats a missing groupId as Maven's default plugin group.
func isCompilerPlugin(groupID, artifactID string) bool {
	return artifactID == compilerPluginArtifactID &&
		(groupID == "" || groupID == compilerPluginGroupID)
}
