package quiz

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed catalog.json
var catalogJSON []byte

// DefaultCatalog returns the built-in place catalog, parsed once.
var DefaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(catalogJSON)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded catalog is invalid: %v", err))
	}
	return c
})
