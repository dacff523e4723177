// Package domain holds the core types of the whisk configurator.
package domain

// fingerprintSeparator joins the revision identifier and the manifest hash.
// Changing it invalidates every cache record in the wild.
const fingerprintSeparator = ":"

// Fingerprint summarizes the source state the environment was built against.
// It changes if and only if the source revision or the manifest content changes.
type Fingerprint struct {
	// Revision identifies the current source-tree checkout.
	Revision string
	// ManifestHash is the content hash of the dependency manifest.
	ManifestHash string
}

// String renders the fingerprint in its persisted form: "<revision>:<hash>".
// Cache records are compared byte-for-byte against this rendering.
func (f Fingerprint) String() string {
	return f.Revision + fingerprintSeparator + f.ManifestHash
}
