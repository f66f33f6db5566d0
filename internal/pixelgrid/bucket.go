package pixelgrid

type point struct {
	X, Y int
}

// BucketArgs describes a flood fill starting at cell ID.
type BucketArgs struct {
	ID      int
	Color   string
	Columns int
	Rows    int
}

// sameColor reports whether a cell counts as the fill's target colour.
// All unused cells share the transparent colour.
func sameColor(c, target Cell) bool {
	if !c.Used || !target.Used {
		return c.Used == target.Used
	}
	return c.Color == target.Color
}

// ApplyBucket flood-fills the 4-connected region of cells matching the colour
// of the starting cell. The fill never wraps around grid edges and visits
// each cell at most once. When the start cell already has the fill colour
// grid itself is returned; otherwise the result is a new grid.
func ApplyBucket(grid Grid, args BucketArgs) Grid {
	target := grid[args.ID]
	fill := Cell{Used: args.Color != "", Color: args.Color}
	if sameColor(fill, target) {
		return grid
	}

	out := make(Grid, len(grid))
	copy(out, grid)

	visited := make([]bool, len(grid))
	x, y := Point(args.ID, args.Columns)
	queue := []point{{x, y}}
	visited[args.ID] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		out[Index(current.X, current.Y, args.Columns)] = fill

		adjacent := []point{
			{current.X, current.Y - 1}, // up
			{current.X, current.Y + 1}, // down
			{current.X - 1, current.Y}, // left
			{current.X + 1, current.Y}, // right
		}
		for _, adj := range adjacent {
			if adj.X < 0 || adj.Y < 0 || adj.X >= args.Columns || adj.Y >= args.Rows {
				continue
			}
			id := Index(adj.X, adj.Y, args.Columns)
			if visited[id] || !sameColor(grid[id], target) {
				continue
			}
			visited[id] = true
			queue = append(queue, adj)
		}
	}

	return out
}
