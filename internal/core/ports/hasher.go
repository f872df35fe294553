package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile computes the digest of a single file's content.
	HashFile(path string) (string, error)

	// HashTree computes the digest of a directory tree, stable across
	// file-visit order.
	HashTree(root string) (string, error)
}
