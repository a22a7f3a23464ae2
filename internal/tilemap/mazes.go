package tilemap

import "sort"

// Maze is a named built-in layout.
type Maze struct {
	ID     string
	Name   string
	Layout []string
}

// DefaultMaze is the maze used when none is configured.
const DefaultMaze = "classic"

var mazes = map[string]Maze{
	"classic": {
		ID:   "classic",
		Name: "Classic",
		Layout: []string{
			"############################",
			"#............##............#",
			"#.####.#####.##.#####.####.#",
			"#o####.#####.##.#####.####o#",
			"#..........................#",
			"#.####.##.########.##.####.#",
			"#......##....##....##......#",
			"######.##### ## #####.######",
			"     #.##          ##.#     ",
			"######.## ###  ### ##.######",
			"      .   #      #   .      ",
			"######.## ######## ##.######",
			"     #.##          ##.#     ",
			"######.## ######## ##.######",
			"#............##............#",
			"#o..##.......P........##..o#",
			"###.##.##.########.##.##.###",
			"#......##....##....##......#",
			"#.##########.##.##########.#",
			"#..........................#",
			"############################",
		},
	},
	"box": {
		ID:   "box",
		Name: "Box",
		Layout: []string{
			"#########",
			"#P......#",
			"#.##.##.#",
			"#.......#",
			"#.##.##.#",
			"#......o#",
			"#########",
		},
	},
}

// Lookup returns the built-in maze with the given ID.
func Lookup(id string) (Maze, bool) {
	m, ok := mazes[id]
	return m, ok
}

// Mazes returns all built-in mazes sorted by ID.
func Mazes() []Maze {
	result := make([]Maze, 0, len(mazes))
	for _, m := range mazes {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
