// Package ports defines the core interfaces for the application.
package ports

import "context"

// RevisionProvider reports the revision identifier of the current source checkout.
//
//go:generate go run go.uber.org/mock/mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionProvider interface {
	// Revision returns the identifier of the checkout rooted at root.
	// It fails when root is not inside a tracked source tree.
	Revision(ctx context.Context, root string) (string, error)
}
