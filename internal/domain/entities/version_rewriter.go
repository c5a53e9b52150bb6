package entities

import "github.com/beevik/etree"

// RewriteVersions pins every override through dependencyManagement. For each
// override it drops the inline version of matching direct dependencies,
// ensures dependencyManagement/dependencies exists and updates or appends
// the managed entry. Running it again with the same overrides leaves the
// document unchanged.
func RewriteVersions(doc *PomDocument, overrides []VersionOverride) (*PomDocument, error) {
	project, err := doc.Project()
	if err != nil {
		return nil, err
	}

	for _, override := range overrides {
		stripDirectPins(doc, project, override)

		management := doc.EnsureChild(project, "dependencyManagement")
		managed := doc.EnsureChild(management, "dependencies")
		upsertManagedDependency(doc, managed, override)
	}

	return doc, nil
}

func stripDirectPins(doc *PomDocument, project *etree.Element, override VersionOverride) {
	for _, dependencies := range doc.Children(project, "dependencies") {
		for _, dependency := range doc.FindDependencies(dependencies, override.GroupID, override.ArtifactID) {
			for _, version := range doc.Children(dependency, "version") {
				doc.RemoveChild(dependency, version)
			}
		}
	}
}

func upsertManagedDependency(doc *PomDocument, managed *etree.Element, override VersionOverride) {
	existing := doc.FindDependencies(managed, override.GroupID, override.ArtifactID)
	if len(existing) == 0 {
		dependency := doc.AppendChild(managed, "dependency", "")
		doc.AppendChild(dependency, "groupId", override.GroupID)
		doc.AppendChild(dependency, "artifactId", override.ArtifactID)
		doc.AppendChild(dependency, "version", override.Version)
		return
	}

	for _, dependency := range existing {
		if version := doc.Child(dependency, "version"); version != nil {
			doc.SetText(version, override.Version)
			continue
		}
		doc.AppendChild(dependency, "version", override.Version)
	}
}
