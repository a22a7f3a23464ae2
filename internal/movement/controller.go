package movement

// Controller drives a grid-aligned character one rendered frame at a time.
// Within Step, input is sampled before the neighbor scan, and the scan runs
// before classification and displacement.
type Controller struct {
	axes     AxisReader
	body     Body
	scanner  *Scanner
	resolver *Resolver
}

// NewController wires a scanner and a resolver around the host services.
func NewController(cfg Config, axes AxisReader, grid Grid, body Body, sprite Sprite) *Controller {
	return &Controller{
		axes:     axes,
		body:     body,
		scanner:  NewScanner(grid, cfg.ScanRadius),
		resolver: NewResolver(cfg, grid, body, sprite),
	}
}

// Step advances the character by dt seconds and reports what happened.
func (c *Controller) Step(dt float64) Frame {
	dir := ReadDirection(c.axes)
	flags := c.scanner.Scan(c.body.Position())
	return c.resolver.Resolve(dir, c.scanner.Cell(), flags, dt)
}

// Scanner exposes the neighbor cache.
func (c *Controller) Scanner() *Scanner {
	return c.scanner
}

// Resolver exposes the movement resolver.
func (c *Controller) Resolver() *Resolver {
	return c.resolver
}

// Reset clears the move vector and the neighbor cache, e.g. after a respawn.
func (c *Controller) Reset() {
	c.resolver.Reset()
	c.scanner.Invalidate()
}
