package model

// NoDescription is shown when neither a curated nor a remote description exists.
const NoDescription = "No description available"

// DisplayProject is a surfaced repository together with its resolved config.
// Curated is true when the config came from an explicit table entry.
type DisplayProject struct {
	Repository RemoteRepository
	Config     CuratedConfig
	Curated    bool
}

// Name returns the repository name.
func (p DisplayProject) Name() string {
	return p.Repository.Name
}

// DisplayDescription prefers the curated description over the remote one.
func (p DisplayProject) DisplayDescription() string {
	if p.Config.CustomDescription != "" {
		return p.Config.CustomDescription
	}
	if p.Repository.Description != "" {
		return p.Repository.Description
	}
	return NoDescription
}

// PrimaryURL is the URL a gallery card opens: the live demo when curated,
// otherwise the repository page.
func (p DisplayProject) PrimaryURL() string {
	if p.Config.LiveURL != "" {
		return p.Config.LiveURL
	}
	return p.Repository.HTMLURL
}
