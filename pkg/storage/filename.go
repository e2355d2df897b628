package storage

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"
)

// FilenameGenerator produces storage names of the form
// "<unix-ms>-<random><ext>". The original base name never reaches disk;
// only its extension survives, lowercased.
type FilenameGenerator struct {
	now     func() time.Time
	randInt func(max int64) int64
}

func NewFilenameGenerator() *FilenameGenerator {
	return &FilenameGenerator{
		now:     time.Now,
		randInt: secureRandomInt,
	}
}

func (g *FilenameGenerator) Generate(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%d%s", g.now().UnixMilli(), g.randInt(1_000_000_000), ext)
}

func secureRandomInt(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}
