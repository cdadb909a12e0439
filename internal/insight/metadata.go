package insight

// Metadata holds the remote-reported repository attributes consumed by the
// analysis stages.
type Metadata struct {
	Name        string
	Description string
	Language    string
	SizeKB      int64
	Stars       int
	Forks       int
}
