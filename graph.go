package inversion

// DependencyGraph records which classes a class's constructor auto-wires.
type DependencyGraph struct {
	nodes map[string]*node
	order []string // Preserve insertion order
}

type node struct {
	name         string
	dependencies []string
}

// NewDependencyGraph creates a new dependency graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(map[string]*node),
		order: make([]string, 0),
	}
}

// AddNode adds a node with its dependencies.
func (g *DependencyGraph) AddNode(name string, dependencies []string) {
	if _, exists := g.nodes[name]; !exists {
		g.order = append(g.order, name)
	}

	g.nodes[name] = &node{
		name:         name,
		dependencies: dependencies,
	}
}

// GetDependencies returns the dependency names for a node.
func (g *DependencyGraph) GetDependencies(name string) []string {
	if node, ok := g.nodes[name]; ok {
		return node.dependencies
	}

	return nil
}

// HasNode checks if a node exists in the graph.
func (g *DependencyGraph) HasNode(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// TopologicalSort returns nodes in dependency order.
// Nodes without dependencies maintain their insertion order.
// Returns error if circular dependency detected.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	visited := make(map[string]bool)
	var path []string
	result := make([]string, 0, len(g.nodes))

	for _, name := range g.order {
		if err := g.visit(name, visited, &path, &result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// visit performs DFS traversal. path holds the chain currently being visited.
func (g *DependencyGraph) visit(name string, visited map[string]bool, path, result *[]string) error {
	if visited[name] {
		return nil
	}

	for i, onPath := range *path {
		if onPath == name {
			cycle := append(append([]string{}, (*path)[i:]...), name)

			return ErrCircularDependency(cycle)
		}
	}

	node := g.nodes[name]
	if node == nil {
		// Not in graph, nothing to order
		return nil
	}

	*path = append(*path, name)

	for _, dep := range node.dependencies {
		if err := g.visit(dep, visited, path, result); err != nil {
			return err
		}
	}

	*path = (*path)[:len(*path)-1]
	visited[name] = true
	*result = append(*result, name)

	return nil
}

// Plan returns the classes Get(class) would resolve, dependencies before the
// classes that need them, ending with class itself. Registered classes are
// leaves. Unlike Get, Plan detects dependency cycles.
func (c *Container) Plan(class string) ([]string, error) {
	graph := NewDependencyGraph()
	if err := c.collect(graph, class); err != nil {
		return nil, err
	}

	return graph.TopologicalSort()
}

// collect walks the classes reachable from class into graph.
func (c *Container) collect(graph *DependencyGraph, class string) error {
	if graph.HasNode(class) {
		return nil
	}

	if _, ok := c.registered[class]; ok {
		graph.AddNode(class, nil)
		return nil
	}

	desc, err := c.introspector.Describe(class)
	if err != nil {
		return err
	}

	if _, ok := c.registration(desc); ok {
		graph.AddNode(class, nil)
		return nil
	}

	var deps []string
	if desc.HasConstructor() {
		for _, param := range desc.Parameters() {
			if param.IsClass() {
				deps = append(deps, param.Class)
			}
		}
	}

	graph.AddNode(class, deps)

	for _, dep := range deps {
		if err := c.collect(graph, dep); err != nil {
			return err
		}
	}

	return nil
}
