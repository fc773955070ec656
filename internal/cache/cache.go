// Package cache prunes leftovers of earlier runs, such as IPC sockets of mpv processes that died without cleanup.
package cache

import (
	"os"
	"time"

	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/jeremyfitness/fitplayer/where"
	"github.com/spf13/afero"
)

// SocketTTL is how old a socket must be before it is considered abandoned.
const SocketTTL = 24 * time.Hour

// Prune removes regular files under dir last modified more than ttl ago and
// returns how many were removed.
func Prune(dir string, ttl time.Duration) (int, error) {
	fs := filesystem.API()
	now := time.Now()

	var removed int
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if now.Sub(info.ModTime()) > ttl {
			if err := fs.Remove(path); err == nil {
				removed++
			}
		}

		return nil
	})

	return removed, err
}

// CollectGarbage prunes abandoned sockets in the background.
func CollectGarbage() {
	go func() {
		removed, err := Prune(where.Sockets(), SocketTTL)
		if err != nil {
			log.Warnf("pruning sockets: %v", err)
			return
		}

		if removed > 0 {
			log.Infof("pruned %d abandoned sockets", removed)
		}
	}()
}
