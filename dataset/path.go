package dataset

import (
	"fmt"
	"os"
	"strings"
)

// Path locates a dataset either on the filesystem or in a Mongo collection.
type Path struct {
	File string
	DB   string
	Coll string
}

// NewPath parses a dataset locator. A path naming an existing file wins;
// otherwise the locator must be {db}.{coll}. An empty locator yields nil,
// meaning "use the embedded fallback".
func NewPath(filePathOrColl string) (*Path, error) {
	if _, err := os.Stat(filePathOrColl); err == nil {
		return &Path{
			File: filePathOrColl,
		}, nil
	}
	dbDotColl := strings.TrimSpace(filePathOrColl)
	if dbDotColl == "" {
		return nil, nil
	}
	splitted := strings.Split(dbDotColl, ".")
	if len(splitted) != 2 {
		return nil, fmt.Errorf("dbDotColl is invalid: %s", dbDotColl)
	}
	return &Path{
		DB:   splitted[0],
		Coll: splitted[1],
	}, nil
}

func (p *Path) String() string {
	if p.File != "" {
		return p.File
	}
	return p.DB + "." + p.Coll
}
