package listing

import (
	"context"

	"github.com/sdejongh/checknorris/pkg/models"
)

// Lister defines the interface for producing a normalized file listing
// of one side of a verification run.
//
// Implementations enumerate files only (no directories) and return one
// FileRecord per surviving entry, exclusion filtering already applied.
// Each call re-issues the underlying listing request.
type Lister interface {
	// List enumerates all files under remotePath
	List(ctx context.Context, remotePath string) ([]models.FileRecord, error)
}
