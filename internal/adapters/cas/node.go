package cas

import (
	"context"
	"os"
	"path/filepath"

	"github.com/0xg0nz0/pants/internal/adapters/fs"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			root := os.Getenv("PANTS_CAS_DIR")
			if root == "" {
				cacheDir, err := os.UserCacheDir()
				if err != nil {
					cacheDir = os.TempDir()
				}
				root = filepath.Join(cacheDir, "pants", "cas")
			}
			return NewStore(root, hasher, fs.NewWalker())
		},
	})
}
