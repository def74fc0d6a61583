package levelset

import (
	"fmt"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
)

// SelectGrid picks the grid to render from a collection. With a name
// it returns that grid or fails; without one it returns the first grid
// an intersector accepts, logging a warning for each grid it skips.
// Unsupported grids are not fatal to the batch.
func SelectGrid(grids []*Grid, name string, logger core.Logger) (*Grid, error) {
	if logger == nil {
		logger = core.NewNullLogger()
	}
	if name != "" {
		for _, g := range grids {
			if g.Name() != name {
				continue
			}
			if err := validate(g); err != nil {
				return nil, err
			}
			return g, nil
		}
		return nil, fmt.Errorf("levelset: no grid named %q: %w", name, core.ErrInvalidArgument)
	}
	for _, g := range grids {
		if err := validate(g); err != nil {
			logger.Printf("skipping grid %q: %v\n", g.Name(), err)
			continue
		}
		return g, nil
	}
	return nil, fmt.Errorf("levelset: no renderable level-set grids: %w", core.ErrUnsupportedValueType)
}
